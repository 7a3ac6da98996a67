// Package specification builds optional-criteria entity filters. Absent
// fields impose no constraint, present fields are AND-combined, and an empty
// criteria set matches the whole collection.
package specification

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AuthorCriteria filters authors by an optional name substring.
type AuthorCriteria struct {
	Name *string
}

// Scope returns a gorm scope applying the author criteria.
func (c AuthorCriteria) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if c.Name != nil && *c.Name != "" {
			db = db.Where("name ILIKE ?", "%"+*c.Name+"%")
		}
		return db
	}
}

// BookCriteria filters books by optional title substring, exact genre and an
// inclusive price range. An inverted range (min > max) simply matches
// nothing; it is not an error.
type BookCriteria struct {
	Title    *string
	Genre    *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// Scope returns a gorm scope applying the book criteria.
func (c BookCriteria) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if c.Title != nil && *c.Title != "" {
			db = db.Where("title ILIKE ?", "%"+*c.Title+"%")
		}
		if c.Genre != nil && *c.Genre != "" {
			db = db.Where("genre = ?", *c.Genre)
		}
		if c.MinPrice != nil {
			db = db.Where("price >= ?", *c.MinPrice)
		}
		if c.MaxPrice != nil {
			db = db.Where("price <= ?", *c.MaxPrice)
		}
		return db
	}
}

// PublisherCriteria filters publishers by optional name and country substrings.
type PublisherCriteria struct {
	Name    *string
	Country *string
}

// Scope returns a gorm scope applying the publisher criteria.
func (c PublisherCriteria) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if c.Name != nil && *c.Name != "" {
			db = db.Where("name ILIKE ?", "%"+*c.Name+"%")
		}
		if c.Country != nil && *c.Country != "" {
			db = db.Where("country ILIKE ?", "%"+*c.Country+"%")
		}
		return db
	}
}
