package repository

import (
	"context"

	"libraryapi/internal/model"

	"gorm.io/gorm"
)

type BookPublisherRepository interface {
	GetAll(ctx context.Context) ([]model.BookPublisher, error)
	GetByID(ctx context.Context, bookID, publisherID uint) (*model.BookPublisher, error)
	Create(ctx context.Context, bookPublisher *model.BookPublisher) error
	CreateRange(ctx context.Context, bookPublishers []model.BookPublisher) error
	Delete(ctx context.Context, bookID, publisherID uint) error
	DeleteByBookOrPublisher(ctx context.Context, bookID, publisherID *uint) error
}

type bookPublisherRepository struct {
	db *gorm.DB
}

func NewBookPublisherRepository(db *gorm.DB) BookPublisherRepository {
	return &bookPublisherRepository{db: db}
}

func (r *bookPublisherRepository) GetAll(ctx context.Context) ([]model.BookPublisher, error) {
	var rows []model.BookPublisher
	if err := GetDB(ctx, r.db).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bookPublisherRepository) GetByID(ctx context.Context, bookID, publisherID uint) (*model.BookPublisher, error) {
	var row model.BookPublisher
	err := GetDB(ctx, r.db).
		Where("book_id = ? AND publisher_id = ?", bookID, publisherID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *bookPublisherRepository) Create(ctx context.Context, bookPublisher *model.BookPublisher) error {
	return GetDB(ctx, r.db).Create(bookPublisher).Error
}

func (r *bookPublisherRepository) CreateRange(ctx context.Context, bookPublishers []model.BookPublisher) error {
	if len(bookPublishers) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Create(&bookPublishers).Error
}

func (r *bookPublisherRepository) Delete(ctx context.Context, bookID, publisherID uint) error {
	return GetDB(ctx, r.db).
		Where("book_id = ? AND publisher_id = ?", bookID, publisherID).
		Delete(&model.BookPublisher{}).Error
}

// DeleteByBookOrPublisher removes every association row matching whichever of
// the two keys is supplied. Callers must supply at least one; the service
// layer enforces that before this is reached.
func (r *bookPublisherRepository) DeleteByBookOrPublisher(ctx context.Context, bookID, publisherID *uint) error {
	query := GetDB(ctx, r.db).Model(&model.BookPublisher{})
	if bookID != nil {
		query = query.Where("book_id = ?", *bookID)
	}
	if publisherID != nil {
		query = query.Where("publisher_id = ?", *publisherID)
	}
	return query.Delete(&model.BookPublisher{}).Error
}
