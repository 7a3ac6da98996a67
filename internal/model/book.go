package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Genre enum constants
const (
	GenreFantasy        = "Fantasy"
	GenreScienceFiction = "ScienceFiction"
	GenreMystery        = "Mystery"
	GenreRomance        = "Romance"
	GenreHorror         = "Horror"
	GenreBiography      = "Biography"
	GenreHistory        = "History"
	GenreAdventure      = "Adventure"
)

// Book represents a book in the library catalog
type Book struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Title      string          `gorm:"type:varchar(255);not null" json:"title"`
	Genre      string          `gorm:"type:varchar(50);not null;index" json:"genre"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	AuthorID   uint            `gorm:"not null;index" json:"author_id"`
	Author     *Author         `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Publishers []Publisher     `gorm:"many2many:book_publishers;" json:"publishers,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
