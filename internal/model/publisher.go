package model

import "time"

// Publisher represents a publishing house
type Publisher struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Country   string    `gorm:"type:varchar(100);not null" json:"country"`
	Books     []Book    `gorm:"many2many:book_publishers;" json:"books,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BookPublisher is the join row for the Book <-> Publisher association,
// keyed by the composite (BookID, PublisherID) pair.
type BookPublisher struct {
	BookID      uint `gorm:"primaryKey" json:"book_id"`
	PublisherID uint `gorm:"primaryKey" json:"publisher_id"`
}
