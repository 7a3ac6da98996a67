package service

import (
	"context"
	"errors"

	"libraryapi/internal/model"
	"libraryapi/internal/repository"

	"gorm.io/gorm"
)

// --- DTOs ---

type ClaimDTO struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type ReplaceClaimRequest struct {
	OldType  string `json:"old_type" binding:"required"`
	OldValue string `json:"old_value" binding:"required"`
	NewType  string `json:"new_type" binding:"required"`
	NewValue string `json:"new_value" binding:"required"`
}

// --- Interface ---

// ManageUserService manages the role memberships and claims of the
// authenticated caller, resolved by username from the bearer token.
type ManageUserService interface {
	GetRoles(ctx context.Context, username string) ([]string, error)
	GetClaims(ctx context.Context, username string) ([]ClaimDTO, error)
	AddRole(ctx context.Context, username, role string) error
	AddRoles(ctx context.Context, username string, roles []string) error
	RemoveRole(ctx context.Context, username, role string) error
	RemoveRoles(ctx context.Context, username string, roles []string) error
	AddClaim(ctx context.Context, username string, claim ClaimDTO) error
	AddClaims(ctx context.Context, username string, claims []ClaimDTO) error
	RemoveClaim(ctx context.Context, username string, claim ClaimDTO) error
	RemoveClaims(ctx context.Context, username string, claims []ClaimDTO) error
	ReplaceClaim(ctx context.Context, username string, req ReplaceClaimRequest) error
}

type manageUserService struct {
	repo      repository.UserRepository
	txManager repository.TransactionManager
}

// NewManageUserService returns a new instance of ManageUserService
func NewManageUserService(repo repository.UserRepository, txManager repository.TransactionManager) ManageUserService {
	return &manageUserService{repo: repo, txManager: txManager}
}

func (s *manageUserService) findUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// --- Roles ---

func (s *manageUserService) GetRoles(ctx context.Context, username string) ([]string, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.GetRoles(ctx, user.ID)
}

func (s *manageUserService) AddRole(ctx context.Context, username, role string) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	exists, err := s.repo.RoleExists(ctx, role)
	if err != nil {
		return err
	}
	if !exists {
		return NewDomainError("Role does not exist")
	}

	return s.repo.AddRole(ctx, user.ID, role)
}

func (s *manageUserService) AddRoles(ctx context.Context, username string, roles []string) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	for _, role := range roles {
		exists, err := s.repo.RoleExists(ctx, role)
		if err != nil {
			return err
		}
		if !exists {
			return NewDomainError("Role '%s' does not exist", role)
		}
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		for _, role := range roles {
			if err := s.repo.AddRole(txCtx, user.ID, role); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *manageUserService) RemoveRole(ctx context.Context, username, role string) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	exists, err := s.repo.RoleExists(ctx, role)
	if err != nil {
		return err
	}
	if !exists {
		return NewDomainError("Role does not exist")
	}

	held, err := s.repo.GetRoles(ctx, user.ID)
	if err != nil {
		return err
	}
	if !contains(held, role) {
		return NewDomainError("User is not in this role")
	}

	return s.repo.RemoveRole(ctx, user.ID, role)
}

func (s *manageUserService) RemoveRoles(ctx context.Context, username string, roles []string) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	held, err := s.repo.GetRoles(ctx, user.ID)
	if err != nil {
		return err
	}

	for _, role := range roles {
		exists, err := s.repo.RoleExists(ctx, role)
		if err != nil {
			return err
		}
		if !exists {
			return NewDomainError("Role '%s' does not exist", role)
		}
		if !contains(held, role) {
			return NewDomainError("User is not in role '%s'", role)
		}
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		for _, role := range roles {
			if err := s.repo.RemoveRole(txCtx, user.ID, role); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- Claims ---

func (s *manageUserService) GetClaims(ctx context.Context, username string) ([]ClaimDTO, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	claims, err := s.repo.GetClaims(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	res := make([]ClaimDTO, 0, len(claims))
	for _, c := range claims {
		res = append(res, ClaimDTO{Type: c.Type, Value: c.Value})
	}
	return res, nil
}

func (s *manageUserService) AddClaim(ctx context.Context, username string, claim ClaimDTO) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	existing, err := s.repo.GetClaims(ctx, user.ID)
	if err != nil {
		return err
	}
	if hasClaim(existing, claim.Type, claim.Value) {
		return NewDomainError("Claim already exists")
	}

	return s.repo.AddClaim(ctx, &model.UserClaim{UserID: user.ID, Type: claim.Type, Value: claim.Value})
}

// AddClaims inserts only the claims not already held; a batch where every
// pair is already present is rejected.
func (s *manageUserService) AddClaims(ctx context.Context, username string, claims []ClaimDTO) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	existing, err := s.repo.GetClaims(ctx, user.ID)
	if err != nil {
		return err
	}

	var fresh []ClaimDTO
	for _, c := range claims {
		if !hasClaim(existing, c.Type, c.Value) {
			fresh = append(fresh, c)
		}
	}
	if len(fresh) == 0 {
		return NewDomainError("All claims already exist")
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		for _, c := range fresh {
			claim := &model.UserClaim{UserID: user.ID, Type: c.Type, Value: c.Value}
			if err := s.repo.AddClaim(txCtx, claim); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *manageUserService) RemoveClaim(ctx context.Context, username string, claim ClaimDTO) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	existing, err := s.repo.GetClaims(ctx, user.ID)
	if err != nil {
		return err
	}
	if !hasClaim(existing, claim.Type, claim.Value) {
		return NewDomainError("Failed to remove claim")
	}

	return s.repo.RemoveClaim(ctx, user.ID, claim.Type, claim.Value)
}

func (s *manageUserService) RemoveClaims(ctx context.Context, username string, claims []ClaimDTO) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		for _, c := range claims {
			if err := s.repo.RemoveClaim(txCtx, user.ID, c.Type, c.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceClaim swaps the old (type, value) pair for the new one atomically.
func (s *manageUserService) ReplaceClaim(ctx context.Context, username string, req ReplaceClaimRequest) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	existing, err := s.repo.GetClaims(ctx, user.ID)
	if err != nil {
		return err
	}
	if !hasClaim(existing, req.OldType, req.OldValue) {
		return NewDomainError("Failed to replace claim")
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.RemoveClaim(txCtx, user.ID, req.OldType, req.OldValue); err != nil {
			return err
		}
		claim := &model.UserClaim{UserID: user.ID, Type: req.NewType, Value: req.NewValue}
		return s.repo.AddClaim(txCtx, claim)
	})
}

// --- helpers ---

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func hasClaim(claims []model.UserClaim, claimType, value string) bool {
	for _, c := range claims {
		if c.Type == claimType && c.Value == value {
			return true
		}
	}
	return false
}
