package service_test

import (
	"context"
	"testing"

	"libraryapi/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registerTestUser(t *testing.T, svc service.AccountService) service.RegisterUserRequest {
	t.Helper()
	req := service.RegisterUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pw",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	return req
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	tokenSvc := service.NewTokenService(testJWTSettings(), repo)
	svc := service.NewAccountService(repo, tokenSvc)

	req := registerTestUser(t, svc)

	token, err := svc.Login(context.Background(), service.LoginUserRequest{Email: req.Email, Password: req.Password})
	require.NoError(t, err)
	require.NotNil(t, token)

	claims := parseToken(t, token.Token, testJWTSettings())
	assert.Equal(t, req.Email, claims["email"])
	assert.Equal(t, req.Username, claims["name"])
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAccountService(repo, service.NewTokenService(testJWTSettings(), repo))

	req := registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), service.RegisterUserRequest{
		Username: req.Username,
		Email:    "other@example.com",
		Password: "whatever1",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Username already exists.")

	_, err = svc.Register(context.Background(), service.RegisterUserRequest{
		Username: "other",
		Email:    req.Email,
		Password: "whatever1",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Email already exists.")
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAccountService(repo, service.NewTokenService(testJWTSettings(), repo))

	req := registerTestUser(t, svc)

	stored, err := repo.GetByEmail(context.Background(), req.Email)
	require.NoError(t, err)
	assert.NotEqual(t, req.Password, stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(req.Password)))
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAccountService(repo, service.NewTokenService(testJWTSettings(), repo))

	req := registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), service.LoginUserRequest{Email: req.Email, Password: "wrong-pw"})
	require.ErrorIs(t, err, service.ErrInvalidLogin)
	assert.False(t, service.IsDomainError(err), "login failures must not leak a domain message")
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAccountService(repo, service.NewTokenService(testJWTSettings(), repo))

	_, err := svc.Login(context.Background(), service.LoginUserRequest{Email: "ghost@example.com", Password: "whatever1"})
	require.ErrorIs(t, err, service.ErrInvalidLogin)
}

func TestChangePasswordRejectsSamePasswordBeforeLookup(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAccountService(repo, service.NewTokenService(testJWTSettings(), repo))

	repo.lookupCalls = 0
	err := svc.ChangePassword(context.Background(), "alice", service.ChangePasswordRequest{
		CurrentPassword: "same-pw",
		NewPassword:     "same-pw",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "The new password must be different from the current one.")
	assert.Zero(t, repo.lookupCalls, "validation must run before the store is touched")
}

func TestChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAccountService(repo, service.NewTokenService(testJWTSettings(), repo))

	req := registerTestUser(t, svc)

	err := svc.ChangePassword(context.Background(), req.Username, service.ChangePasswordRequest{
		CurrentPassword: "wrong-pw",
		NewPassword:     "brand-new-pw",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Incorrect current password.")

	err = svc.ChangePassword(context.Background(), req.Username, service.ChangePasswordRequest{
		CurrentPassword: req.Password,
		NewPassword:     "brand-new-pw",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), service.LoginUserRequest{Email: req.Email, Password: "brand-new-pw"})
	assert.NoError(t, err)
}

func TestGetProfileUnknownUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAccountService(repo, service.NewTokenService(testJWTSettings(), repo))

	_, err := svc.GetProfile(context.Background(), "ghost")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAccountService(repo, service.NewTokenService(testJWTSettings(), repo))

	user := repo.addUser("gone", "gone@example.com", "hash")

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID.String()))
	assert.Equal(t, user.ID, repo.deletedUserID)

	err := svc.DeleteUser(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid user ID.")

	err = svc.DeleteUser(context.Background(), user.ID.String())
	require.ErrorIs(t, err, service.ErrUserNotFound)
}
