package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit_test_secret")
	t.Setenv("JWT_EXPIRE_MINUTES", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []byte("unit_test_secret"), cfg.JWT.Secret)
	assert.Equal(t, "libraryApi", cfg.JWT.Issuer)
	assert.Equal(t, "libraryApiClients", cfg.JWT.Audience)
	assert.Equal(t, 60, cfg.JWT.ExpireMinutes)
	assert.Contains(t, cfg.DatabaseDSN, "/library?sslmode=disable")
}

func TestLoadExpireMinutes(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit_test_secret")
	t.Setenv("JWT_EXPIRE_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.JWT.ExpireMinutes)
}

func TestLoadRejectsBadExpireMinutes(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit_test_secret")

	for _, raw := range []string{"abc", "0", "-5"} {
		t.Setenv("JWT_EXPIRE_MINUTES", raw)
		_, err := Load()
		assert.Error(t, err, "JWT_EXPIRE_MINUTES=%s must be rejected", raw)
	}
}

func TestLoadRequiresSecretInReleaseMode(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GIN_MODE", "release")

	_, err := Load()
	assert.Error(t, err)
}
