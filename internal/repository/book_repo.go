package repository

import (
	"context"

	"libraryapi/internal/model"
	"libraryapi/internal/specification"

	"gorm.io/gorm"
)

type BookRepository interface {
	GetAll(ctx context.Context) ([]model.Book, error)
	GetAllWithIncludes(ctx context.Context) ([]model.Book, error)
	GetBySpecification(ctx context.Context, criteria specification.BookCriteria) ([]model.Book, error)
	GetBySpecificationWithIncludes(ctx context.Context, criteria specification.BookCriteria) ([]model.Book, error)
	GetByID(ctx context.Context, id uint) (*model.Book, error)
	GetByIDWithIncludes(ctx context.Context, id uint) (*model.Book, error)
	Create(ctx context.Context, book *model.Book) error
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uint) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := GetDB(ctx, r.db).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) GetAllWithIncludes(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := GetDB(ctx, r.db).Preload("Author").Preload("Publishers").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) GetBySpecification(ctx context.Context, criteria specification.BookCriteria) ([]model.Book, error) {
	var books []model.Book
	if err := GetDB(ctx, r.db).Scopes(criteria.Scope()).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) GetBySpecificationWithIncludes(ctx context.Context, criteria specification.BookCriteria) ([]model.Book, error) {
	var books []model.Book
	if err := GetDB(ctx, r.db).Scopes(criteria.Scope()).Preload("Author").Preload("Publishers").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := GetDB(ctx, r.db).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) GetByIDWithIncludes(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := GetDB(ctx, r.db).Preload("Author").Preload("Publishers").First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) Create(ctx context.Context, book *model.Book) error {
	return GetDB(ctx, r.db).Create(book).Error
}

func (r *bookRepository) Update(ctx context.Context, book *model.Book) error {
	return GetDB(ctx, r.db).Save(book).Error
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Delete(&model.Book{}, id).Error
}
