package repository

import (
	"context"

	"libraryapi/internal/model"
	"libraryapi/internal/specification"

	"gorm.io/gorm"
)

type PublisherRepository interface {
	GetAll(ctx context.Context) ([]model.Publisher, error)
	GetAllWithIncludes(ctx context.Context) ([]model.Publisher, error)
	GetBySpecification(ctx context.Context, criteria specification.PublisherCriteria) ([]model.Publisher, error)
	GetBySpecificationWithIncludes(ctx context.Context, criteria specification.PublisherCriteria) ([]model.Publisher, error)
	GetByID(ctx context.Context, id uint) (*model.Publisher, error)
	GetByIDWithIncludes(ctx context.Context, id uint) (*model.Publisher, error)
	Create(ctx context.Context, publisher *model.Publisher) error
	Update(ctx context.Context, publisher *model.Publisher) error
	Delete(ctx context.Context, id uint) error
}

type publisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) GetAll(ctx context.Context) ([]model.Publisher, error) {
	var publishers []model.Publisher
	if err := GetDB(ctx, r.db).Find(&publishers).Error; err != nil {
		return nil, err
	}
	return publishers, nil
}

func (r *publisherRepository) GetAllWithIncludes(ctx context.Context) ([]model.Publisher, error) {
	var publishers []model.Publisher
	if err := GetDB(ctx, r.db).Preload("Books").Find(&publishers).Error; err != nil {
		return nil, err
	}
	return publishers, nil
}

func (r *publisherRepository) GetBySpecification(ctx context.Context, criteria specification.PublisherCriteria) ([]model.Publisher, error) {
	var publishers []model.Publisher
	if err := GetDB(ctx, r.db).Scopes(criteria.Scope()).Find(&publishers).Error; err != nil {
		return nil, err
	}
	return publishers, nil
}

func (r *publisherRepository) GetBySpecificationWithIncludes(ctx context.Context, criteria specification.PublisherCriteria) ([]model.Publisher, error) {
	var publishers []model.Publisher
	if err := GetDB(ctx, r.db).Scopes(criteria.Scope()).Preload("Books").Find(&publishers).Error; err != nil {
		return nil, err
	}
	return publishers, nil
}

func (r *publisherRepository) GetByID(ctx context.Context, id uint) (*model.Publisher, error) {
	var publisher model.Publisher
	if err := GetDB(ctx, r.db).First(&publisher, id).Error; err != nil {
		return nil, err
	}
	return &publisher, nil
}

func (r *publisherRepository) GetByIDWithIncludes(ctx context.Context, id uint) (*model.Publisher, error) {
	var publisher model.Publisher
	if err := GetDB(ctx, r.db).Preload("Books").First(&publisher, id).Error; err != nil {
		return nil, err
	}
	return &publisher, nil
}

func (r *publisherRepository) Create(ctx context.Context, publisher *model.Publisher) error {
	return GetDB(ctx, r.db).Create(publisher).Error
}

func (r *publisherRepository) Update(ctx context.Context, publisher *model.Publisher) error {
	return GetDB(ctx, r.db).Save(publisher).Error
}

func (r *publisherRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Delete(&model.Publisher{}, id).Error
}
