package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// JWTSettings holds the token signing configuration
type JWTSettings struct {
	Secret        []byte
	Issuer        string
	Audience      string
	ExpireMinutes int
}

// Config holds the full application configuration loaded from the environment
type Config struct {
	DatabaseDSN string
	Port        string
	JWT         JWTSettings
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configs/.env if present and builds the configuration from
// environment variables. A missing secret or an unparsable expire-minutes
// value is a configuration error, not a per-request one; the caller is
// expected to treat it as fatal at startup.
func Load() (*Config, error) {
	if err := godotenv.Load("configs/.env"); err != nil {
		// Absence of the file is fine; env vars may be set directly.
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // Development fallback only
	}

	expireMinutes := 60
	if raw := os.Getenv("JWT_EXPIRE_MINUTES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRE_MINUTES %q: must be a positive integer", raw)
		}
		expireMinutes = parsed
	}

	dbHost := getenv("DB_HOST", "localhost")
	dbPort := getenv("DB_PORT", "5432")
	dbUser := getenv("DB_USER", "postgres")
	dbPassword := getenv("DB_PASSWORD", "postgres")
	dbName := getenv("DB_NAME", "library")
	dbSslMode := getenv("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	return &Config{
		DatabaseDSN: dsn,
		Port:        getenv("PORT", "8080"),
		JWT: JWTSettings{
			Secret:        []byte(secret),
			Issuer:        getenv("JWT_ISSUER", "libraryApi"),
			Audience:      getenv("JWT_AUDIENCE", "libraryApiClients"),
			ExpireMinutes: expireMinutes,
		},
	}, nil
}
