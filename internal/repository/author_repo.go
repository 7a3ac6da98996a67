package repository

import (
	"context"

	"libraryapi/internal/model"
	"libraryapi/internal/specification"

	"gorm.io/gorm"
)

type AuthorRepository interface {
	GetAll(ctx context.Context) ([]model.Author, error)
	GetAllWithIncludes(ctx context.Context) ([]model.Author, error)
	GetBySpecification(ctx context.Context, criteria specification.AuthorCriteria) ([]model.Author, error)
	GetBySpecificationWithIncludes(ctx context.Context, criteria specification.AuthorCriteria) ([]model.Author, error)
	GetByID(ctx context.Context, id uint) (*model.Author, error)
	GetByIDWithIncludes(ctx context.Context, id uint) (*model.Author, error)
	Create(ctx context.Context, author *model.Author) error
	Update(ctx context.Context, author *model.Author) error
	Delete(ctx context.Context, id uint) error
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) GetAll(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := GetDB(ctx, r.db).Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *authorRepository) GetAllWithIncludes(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := GetDB(ctx, r.db).Preload("Books").Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *authorRepository) GetBySpecification(ctx context.Context, criteria specification.AuthorCriteria) ([]model.Author, error) {
	var authors []model.Author
	if err := GetDB(ctx, r.db).Scopes(criteria.Scope()).Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *authorRepository) GetBySpecificationWithIncludes(ctx context.Context, criteria specification.AuthorCriteria) ([]model.Author, error) {
	var authors []model.Author
	if err := GetDB(ctx, r.db).Scopes(criteria.Scope()).Preload("Books").Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *authorRepository) GetByID(ctx context.Context, id uint) (*model.Author, error) {
	var author model.Author
	if err := GetDB(ctx, r.db).First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) GetByIDWithIncludes(ctx context.Context, id uint) (*model.Author, error) {
	var author model.Author
	if err := GetDB(ctx, r.db).Preload("Books").First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) Create(ctx context.Context, author *model.Author) error {
	return GetDB(ctx, r.db).Create(author).Error
}

func (r *authorRepository) Update(ctx context.Context, author *model.Author) error {
	return GetDB(ctx, r.db).Save(author).Error
}

func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Delete(&model.Author{}, id).Error
}
