package service

import (
	"context"
	"time"

	"libraryapi/internal/config"
	"libraryapi/internal/model"
	"libraryapi/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues signed bearer tokens for authenticated identities.
type TokenService interface {
	GenerateToken(ctx context.Context, user *model.User) (string, error)
}

type tokenService struct {
	settings config.JWTSettings
	userRepo repository.UserRepository
}

// NewTokenService returns a new instance of TokenService
func NewTokenService(settings config.JWTSettings, userRepo repository.UserRepository) TokenService {
	return &tokenService{settings: settings, userRepo: userRepo}
}

// registeredClaims cannot be shadowed by stored user claims.
var registeredClaims = map[string]bool{
	"sub": true, "email": true, "jti": true, "name": true,
	"unique_name": true, "roles": true, "iss": true, "aud": true,
	"iat": true, "exp": true,
}

// GenerateToken builds a self-contained HS256 token for an already
// authenticated user: subject, email, a fresh token id, the username under
// both conventional name claim types, one role entry per membership, and all
// of the identity's stored claims. Authorizing later requests needs nothing
// beyond decoding it.
func (s *tokenService) GenerateToken(ctx context.Context, user *model.User) (string, error) {
	roles, err := s.userRepo.GetRoles(ctx, user.ID)
	if err != nil {
		return "", err
	}
	stored, err := s.userRepo.GetClaims(ctx, user.ID)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":         user.ID.String(),
		"email":       user.Email,
		"jti":         uuid.NewString(),
		"name":        user.Username,
		"unique_name": user.Username,
		"roles":       roles,
		"iss":         s.settings.Issuer,
		"aud":         s.settings.Audience,
		"iat":         now.Unix(),
		"exp":         now.Add(time.Duration(s.settings.ExpireMinutes) * time.Minute).Unix(),
	}

	// A user may hold several claims of the same type with distinct values.
	// They are grouped so no value is lost: a single value stays a plain
	// string, multiple values become an array under the shared type.
	grouped := make(map[string][]string)
	for _, c := range stored {
		if registeredClaims[c.Type] {
			continue
		}
		grouped[c.Type] = append(grouped[c.Type], c.Value)
	}
	for claimType, values := range grouped {
		if len(values) == 1 {
			claims[claimType] = values[0]
		} else {
			claims[claimType] = values
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.settings.Secret)
}
