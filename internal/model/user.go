package model

import (
	"time"

	"github.com/google/uuid"
)

// Role name constants. Every name used in an authorization check must be
// seeded in the roles registry before it can be assigned.
const (
	RoleAdmin                 = "Admin"
	RoleAuthorsBooksPublisher = "AuthorsBooksPublisher"
	RoleAuthorsBooks          = "AuthorsBooks"
	RolePublisher             = "Publisher"
	RoleViewAuthorsBooks      = "ViewAuthorsBooks"
)

// User represents an identity in the identity store
type User struct {
	ID        uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username  string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email     string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string      `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash, never serialized
	Roles     []Role      `gorm:"many2many:user_roles;" json:"roles,omitempty"`
	Claims    []UserClaim `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"claims,omitempty"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// Role is an entry in the role registry
type Role struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// UserClaim is a (type, value) fact attached to an identity. A claim such as
// BooksAccess=false revokes an otherwise role-granted permission. The
// (user, type, value) triple is unique, so adding a duplicate is rejected by
// the store's constraint.
type UserClaim struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_claim,priority:1" json:"user_id"`
	Type      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_user_claim,priority:2" json:"type"`
	Value     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_claim,priority:3" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
