package database

import (
	"log"

	"libraryapi/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.UserClaim{},
		&model.Author{},
		&model.Book{},
		&model.Publisher{},
		&model.BookPublisher{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}

// SeedRoles inserts the built-in role registry if the roles are not present.
// Authorization checks reference these names, so they must exist before any
// role assignment happens.
func SeedRoles(db *gorm.DB) error {
	names := []string{
		model.RoleAdmin,
		model.RoleAuthorsBooksPublisher,
		model.RoleAuthorsBooks,
		model.RolePublisher,
		model.RoleViewAuthorsBooks,
	}

	for _, name := range names {
		var role model.Role
		err := db.Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&model.Role{Name: name}).Error; err != nil {
			return err
		}
	}

	return nil
}
