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

type CreateAuthorRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateAuthorRequest struct {
	ID   uint    `json:"id" binding:"required"`
	Name *string `json:"name"`
}

type AuthorResponse struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Books     []BookResponse `json:"books,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// --- Interface ---

type AuthorService interface {
	GetAll(ctx context.Context) ([]AuthorResponse, error)
	GetAllWithIncludes(ctx context.Context) ([]AuthorResponse, error)
	GetBySpecification(ctx context.Context, criteria specification.AuthorCriteria) ([]AuthorResponse, error)
	GetBySpecificationWithIncludes(ctx context.Context, criteria specification.AuthorCriteria) ([]AuthorResponse, error)
	GetByID(ctx context.Context, id uint) (*AuthorResponse, error)
	GetByIDWithIncludes(ctx context.Context, id uint) (*AuthorResponse, error)
	Add(ctx context.Context, req CreateAuthorRequest) (*AuthorResponse, error)
	Update(ctx context.Context, req UpdateAuthorRequest) (*AuthorResponse, error)
	Delete(ctx context.Context, id uint) error
}

type authorService struct {
	repo repository.AuthorRepository
	hub  *websocket.Hub
}

// NewAuthorService returns a new instance of AuthorService
func NewAuthorService(repo repository.AuthorRepository, hub *websocket.Hub) AuthorService {
	return &authorService{repo: repo, hub: hub}
}

// --- Mapping ---

func toAuthorResponse(a model.Author) AuthorResponse {
	res := AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	for _, b := range a.Books {
		res.Books = append(res.Books, toBookResponse(b))
	}
	return res
}

func toAuthorResponses(authors []model.Author) []AuthorResponse {
	res := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		res = append(res, toAuthorResponse(a))
	}
	return res
}

// --- CRUD ---

func (s *authorService) GetAll(ctx context.Context) ([]AuthorResponse, error) {
	authors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toAuthorResponses(authors), nil
}

func (s *authorService) GetAllWithIncludes(ctx context.Context) ([]AuthorResponse, error) {
	authors, err := s.repo.GetAllWithIncludes(ctx)
	if err != nil {
		return nil, err
	}
	return toAuthorResponses(authors), nil
}

func (s *authorService) GetBySpecification(ctx context.Context, criteria specification.AuthorCriteria) ([]AuthorResponse, error) {
	authors, err := s.repo.GetBySpecification(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return toAuthorResponses(authors), nil
}

func (s *authorService) GetBySpecificationWithIncludes(ctx context.Context, criteria specification.AuthorCriteria) ([]AuthorResponse, error) {
	authors, err := s.repo.GetBySpecificationWithIncludes(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return toAuthorResponses(authors), nil
}

func (s *authorService) GetByID(ctx context.Context, id uint) (*AuthorResponse, error) {
	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewDomainError("No Author found with ID %d.", id)
		}
		return nil, err
	}
	res := toAuthorResponse(*author)
	return &res, nil
}

func (s *authorService) GetByIDWithIncludes(ctx context.Context, id uint) (*AuthorResponse, error) {
	author, err := s.repo.GetByIDWithIncludes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewDomainError("No Author found with ID %d.", id)
		}
		return nil, err
	}
	res := toAuthorResponse(*author)
	return &res, nil
}

func (s *authorService) Add(ctx context.Context, req CreateAuthorRequest) (*AuthorResponse, error) {
	if req.Name == "" {
		return nil, NewDomainError("Cannot add an Author without a name.")
	}

	author := &model.Author{Name: req.Name}
	if err := s.repo.Create(ctx, author); err != nil {
		return nil, err
	}

	s.hub.Notify(websocket.Event{Resource: "author", Action: "created", ID: author.ID})

	res := toAuthorResponse(*author)
	return &res, nil
}

func (s *authorService) Update(ctx context.Context, req UpdateAuthorRequest) (*AuthorResponse, error) {
	author, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewDomainError("Cannot update. No Author found with ID %d.", req.ID)
		}
		return nil, err
	}

	// Only fields present in the payload overwrite stored values
	if req.Name != nil {
		author.Name = *req.Name
	}

	if err := s.repo.Update(ctx, author); err != nil {
		return nil, err
	}

	s.hub.Notify(websocket.Event{Resource: "author", Action: "updated", ID: author.ID})

	res := toAuthorResponse(*author)
	return &res, nil
}

func (s *authorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewDomainError("Cannot delete. No Author found with ID %d.", id)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Notify(websocket.Event{Resource: "author", Action: "deleted", ID: id})
	return nil
}
