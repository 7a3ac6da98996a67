package service_test

import (
	"context"
	"testing"

	"libraryapi/internal/config"
	"libraryapi/internal/model"
	"libraryapi/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTSettings() config.JWTSettings {
	return config.JWTSettings{
		Secret:        []byte("test_secret_key"),
		Issuer:        "libraryApi",
		Audience:      "libraryApiClients",
		ExpireMinutes: 60,
	}
}

func parseToken(t *testing.T, raw string, settings config.JWTSettings) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
		return settings.Secret, nil
	}, jwt.WithIssuer(settings.Issuer), jwt.WithAudience(settings.Audience))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestGenerateTokenCarriesIdentity(t *testing.T) {
	repo := newFakeUserRepo()
	user := repo.addUser("alice", "alice@example.com", "hash")
	repo.userRoles[user.ID] = []string{model.RoleAdmin, model.RoleAuthorsBooks}

	settings := testJWTSettings()
	svc := service.NewTokenService(settings, repo)

	raw, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)

	claims := parseToken(t, raw, settings)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, "alice", claims["name"])
	assert.Equal(t, "alice", claims["unique_name"])
	assert.NotEmpty(t, claims["jti"])

	roles, ok := claims["roles"].([]interface{})
	require.True(t, ok)
	assert.ElementsMatch(t, []interface{}{model.RoleAdmin, model.RoleAuthorsBooks}, roles)
}

func TestGenerateTokenIncludesStoredClaims(t *testing.T) {
	repo := newFakeUserRepo()
	user := repo.addUser("bob", "bob@example.com", "hash")
	repo.userClaims[user.ID] = []model.UserClaim{
		{UserID: user.ID, Type: "BooksAccess", Value: "false"},
		{UserID: user.ID, Type: "department", Value: "archives"},
	}

	settings := testJWTSettings()
	svc := service.NewTokenService(settings, repo)

	raw, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)

	claims := parseToken(t, raw, settings)
	assert.Equal(t, "false", claims["BooksAccess"])
	assert.Equal(t, "archives", claims["department"])
}

func TestGenerateTokenKeepsAllSameTypeClaims(t *testing.T) {
	repo := newFakeUserRepo()
	user := repo.addUser("erin", "erin@example.com", "hash")
	repo.userClaims[user.ID] = []model.UserClaim{
		{UserID: user.ID, Type: "BooksAccess", Value: "false"},
		{UserID: user.ID, Type: "BooksAccess", Value: "true"},
	}

	settings := testJWTSettings()
	svc := service.NewTokenService(settings, repo)

	raw, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)

	claims := parseToken(t, raw, settings)
	values, ok := claims["BooksAccess"].([]interface{})
	require.True(t, ok, "same-type claims must be carried as an array")
	assert.ElementsMatch(t, []interface{}{"false", "true"}, values)
}

func TestGenerateTokenStoredClaimCannotShadowSubject(t *testing.T) {
	repo := newFakeUserRepo()
	user := repo.addUser("carol", "carol@example.com", "hash")
	repo.userClaims[user.ID] = []model.UserClaim{
		{UserID: user.ID, Type: "sub", Value: "spoofed"},
		{UserID: user.ID, Type: "roles", Value: "Admin"},
	}

	settings := testJWTSettings()
	svc := service.NewTokenService(settings, repo)

	raw, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)

	claims := parseToken(t, raw, settings)
	assert.Equal(t, user.ID.String(), claims["sub"])
	_, isArray := claims["roles"].([]interface{})
	assert.True(t, isArray, "roles claim must stay an array")
}

func TestGenerateTokenNoRoles(t *testing.T) {
	repo := newFakeUserRepo()
	user := repo.addUser("dave", "dave@example.com", "hash")

	settings := testJWTSettings()
	svc := service.NewTokenService(settings, repo)

	raw, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)

	claims := parseToken(t, raw, settings)
	assert.Empty(t, claims["roles"])
}
