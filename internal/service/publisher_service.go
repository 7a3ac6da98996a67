package service

import (
	"context"
	"errors"
	"time"

	"libraryapi/internal/model"
	"libraryapi/internal/repository"
	"libraryapi/internal/specification"
	"libraryapi/internal/websocket"

	"gorm.io/gorm"
)

// --- DTOs ---

type CreatePublisherRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
}

type UpdatePublisherRequest struct {
	ID      uint    `json:"id" binding:"required"`
	Name    *string `json:"name"`
	Country *string `json:"country"`
}

type PublisherResponse struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Country   string         `json:"country"`
	Books     []BookResponse `json:"books,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// --- Interface ---

type PublisherService interface {
	GetAll(ctx context.Context) ([]PublisherResponse, error)
	GetAllWithIncludes(ctx context.Context) ([]PublisherResponse, error)
	GetBySpecification(ctx context.Context, criteria specification.PublisherCriteria) ([]PublisherResponse, error)
	GetBySpecificationWithIncludes(ctx context.Context, criteria specification.PublisherCriteria) ([]PublisherResponse, error)
	GetByID(ctx context.Context, id uint) (*PublisherResponse, error)
	GetByIDWithIncludes(ctx context.Context, id uint) (*PublisherResponse, error)
	Add(ctx context.Context, req CreatePublisherRequest) (*PublisherResponse, error)
	Update(ctx context.Context, req UpdatePublisherRequest) (*PublisherResponse, error)
	Delete(ctx context.Context, id uint) error
}

type publisherService struct {
	repo repository.PublisherRepository
	hub  *websocket.Hub
}

// NewPublisherService returns a new instance of PublisherService
func NewPublisherService(repo repository.PublisherRepository, hub *websocket.Hub) PublisherService {
	return &publisherService{repo: repo, hub: hub}
}

// --- Mapping ---

func toPublisherResponse(p model.Publisher) PublisherResponse {
	res := PublisherResponse{
		ID:        p.ID,
		Name:      p.Name,
		Country:   p.Country,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for _, b := range p.Books {
		res.Books = append(res.Books, toBookResponse(b))
	}
	return res
}

func toPublisherResponses(publishers []model.Publisher) []PublisherResponse {
	res := make([]PublisherResponse, 0, len(publishers))
	for _, p := range publishers {
		res = append(res, toPublisherResponse(p))
	}
	return res
}

// --- CRUD ---

func (s *publisherService) GetAll(ctx context.Context) ([]PublisherResponse, error) {
	publishers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toPublisherResponses(publishers), nil
}

func (s *publisherService) GetAllWithIncludes(ctx context.Context) ([]PublisherResponse, error) {
	publishers, err := s.repo.GetAllWithIncludes(ctx)
	if err != nil {
		return nil, err
	}
	return toPublisherResponses(publishers), nil
}

func (s *publisherService) GetBySpecification(ctx context.Context, criteria specification.PublisherCriteria) ([]PublisherResponse, error) {
	publishers, err := s.repo.GetBySpecification(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return toPublisherResponses(publishers), nil
}

func (s *publisherService) GetBySpecificationWithIncludes(ctx context.Context, criteria specification.PublisherCriteria) ([]PublisherResponse, error) {
	publishers, err := s.repo.GetBySpecificationWithIncludes(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return toPublisherResponses(publishers), nil
}

func (s *publisherService) GetByID(ctx context.Context, id uint) (*PublisherResponse, error) {
	publisher, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewDomainError("No Publisher found with ID %d.", id)
		}
		return nil, err
	}
	res := toPublisherResponse(*publisher)
	return &res, nil
}

func (s *publisherService) GetByIDWithIncludes(ctx context.Context, id uint) (*PublisherResponse, error) {
	publisher, err := s.repo.GetByIDWithIncludes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewDomainError("No Publisher found with ID %d.", id)
		}
		return nil, err
	}
	res := toPublisherResponse(*publisher)
	return &res, nil
}

func (s *publisherService) Add(ctx context.Context, req CreatePublisherRequest) (*PublisherResponse, error) {
	if req.Name == "" || req.Country == "" {
		return nil, NewDomainError("Cannot add a Publisher without a name and country.")
	}

	publisher := &model.Publisher{Name: req.Name, Country: req.Country}
	if err := s.repo.Create(ctx, publisher); err != nil {
		return nil, err
	}

	s.hub.Notify(websocket.Event{Resource: "publisher", Action: "created", ID: publisher.ID})

	res := toPublisherResponse(*publisher)
	return &res, nil
}

func (s *publisherService) Update(ctx context.Context, req UpdatePublisherRequest) (*PublisherResponse, error) {
	publisher, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewDomainError("Cannot update. No Publisher found with ID %d.", req.ID)
		}
		return nil, err
	}

	// Only fields present in the payload overwrite stored values
	if req.Name != nil {
		publisher.Name = *req.Name
	}
	if req.Country != nil {
		publisher.Country = *req.Country
	}

	if err := s.repo.Update(ctx, publisher); err != nil {
		return nil, err
	}

	s.hub.Notify(websocket.Event{Resource: "publisher", Action: "updated", ID: publisher.ID})

	res := toPublisherResponse(*publisher)
	return &res, nil
}

func (s *publisherService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewDomainError("Cannot delete. No Publisher found with ID %d.", id)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Notify(websocket.Event{Resource: "publisher", Action: "deleted", ID: id})
	return nil
}
