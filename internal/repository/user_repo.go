package repository

import (
	"context"

	"libraryapi/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository is the identity store: user records, role memberships and
// per-user claims.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error

	RoleExists(ctx context.Context, name string) (bool, error)
	GetRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
	AddRole(ctx context.Context, userID uuid.UUID, name string) error
	RemoveRole(ctx context.Context, userID uuid.UUID, name string) error

	GetClaims(ctx context.Context, userID uuid.UUID) ([]model.UserClaim, error)
	AddClaim(ctx context.Context, claim *model.UserClaim) error
	RemoveClaim(ctx context.Context, userID uuid.UUID, claimType, value string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return GetDB(ctx, r.db).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := GetDB(ctx, r.db).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return GetDB(ctx, r.db).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Select("Claims").Delete(&model.User{ID: id}).Error
}

func (r *userRepository) RoleExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Role{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) GetRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var names []string
	err := GetDB(ctx, r.db).
		Table("roles").
		Select("roles.name").
		Joins("INNER JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Pluck("roles.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *userRepository) AddRole(ctx context.Context, userID uuid.UUID, name string) error {
	db := GetDB(ctx, r.db)

	var role model.Role
	if err := db.First(&role, "name = ?", name).Error; err != nil {
		return err
	}

	return db.Model(&model.User{ID: userID}).Association("Roles").Append(&role)
}

func (r *userRepository) RemoveRole(ctx context.Context, userID uuid.UUID, name string) error {
	db := GetDB(ctx, r.db)

	var role model.Role
	if err := db.First(&role, "name = ?", name).Error; err != nil {
		return err
	}

	return db.Model(&model.User{ID: userID}).Association("Roles").Delete(&role)
}

func (r *userRepository) GetClaims(ctx context.Context, userID uuid.UUID) ([]model.UserClaim, error) {
	var claims []model.UserClaim
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *userRepository) AddClaim(ctx context.Context, claim *model.UserClaim) error {
	return GetDB(ctx, r.db).Create(claim).Error
}

func (r *userRepository) RemoveClaim(ctx context.Context, userID uuid.UUID, claimType, value string) error {
	return GetDB(ctx, r.db).
		Where("user_id = ? AND type = ? AND value = ?", userID, claimType, value).
		Delete(&model.UserClaim{}).Error
}
