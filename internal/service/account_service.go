package service

import (
	"context"
	"errors"

	"libraryapi/internal/model"
	"libraryapi/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrUserNotFound is raised when the authenticated identity has no backing
// user record. Handlers surface it as 404 rather than the usual 400.
var ErrUserNotFound = NewDomainError("User not found")

// ErrInvalidLogin covers both an unknown email and a wrong password, so the
// response never reveals which one failed. Handlers surface it as 401;
// infrastructure failures during login keep their ordinary 500 path.
var ErrInvalidLogin = errors.New("invalid login attempt")

// --- DTOs ---

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UpdateProfileRequest struct {
	Email *string `json:"email" binding:"omitempty,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// --- Interface ---

type AccountService interface {
	Register(ctx context.Context, req RegisterUserRequest) (*UserResponse, error)
	Login(ctx context.Context, req LoginUserRequest) (*TokenResponse, error)
	GetProfile(ctx context.Context, username string) (*UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	UpdateProfile(ctx context.Context, username string, req UpdateProfileRequest) (*UserResponse, error)
	ChangePassword(ctx context.Context, username string, req ChangePasswordRequest) error
	DeleteUser(ctx context.Context, id string) error
}

type accountService struct {
	repo         repository.UserRepository
	tokenService TokenService
}

// NewAccountService returns a new instance of AccountService
func NewAccountService(repo repository.UserRepository, tokenService TokenService) AccountService {
	return &accountService{repo: repo, tokenService: tokenService}
}

func toUserResponse(u *model.User) *UserResponse {
	return &UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

// --- Operations ---

func (s *accountService) Register(ctx context.Context, req RegisterUserRequest) (*UserResponse, error) {
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, NewDomainError("Username already exists.")
	}
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, NewDomainError("Email already exists.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

func (s *accountService) Login(ctx context.Context, req LoginUserRequest) (*TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidLogin
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidLogin
	}

	token, err := s.tokenService.GenerateToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{Token: token}, nil
}

func (s *accountService) GetProfile(ctx context.Context, username string) (*UserResponse, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *accountService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]UserResponse, 0, len(users))
	for i := range users {
		res = append(res, *toUserResponse(&users[i]))
	}
	return res, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, username string, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.repo.GetByEmail(ctx, *req.Email); err == nil {
			return nil, NewDomainError("Email already exists.")
		}
		user.Email = *req.Email
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

func (s *accountService) ChangePassword(ctx context.Context, username string, req ChangePasswordRequest) error {
	// Validated before the store is touched at all
	if req.NewPassword == req.CurrentPassword {
		return NewDomainError("The new password must be different from the current one.")
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return NewDomainError("Incorrect current password.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.repo.Update(ctx, user)
}

func (s *accountService) DeleteUser(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return NewDomainError("Invalid user ID.")
	}

	if _, err := s.repo.GetByID(ctx, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, uid)
}
