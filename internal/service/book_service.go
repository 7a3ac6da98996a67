package service

import (
	"context"
	"errors"
	"time"

	"libraryapi/internal/model"
	"libraryapi/internal/repository"
	"libraryapi/internal/specification"
	"libraryapi/internal/websocket"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateBookRequest struct {
	Title    string          `json:"title" binding:"required"`
	Genre    string          `json:"genre" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	AuthorID uint            `json:"author_id" binding:"required"`
}

type UpdateBookRequest struct {
	ID       uint             `json:"id" binding:"required"`
	Title    *string          `json:"title"`
	Genre    *string          `json:"genre"`
	Price    *decimal.Decimal `json:"price"`
	AuthorID *uint            `json:"author_id"`
}

type BookResponse struct {
	ID         uint                `json:"id"`
	Title      string              `json:"title"`
	Genre      string              `json:"genre"`
	Price      decimal.Decimal     `json:"price"`
	AuthorID   uint                `json:"author_id"`
	Author     *AuthorResponse     `json:"author,omitempty"`
	Publishers []PublisherResponse `json:"publishers,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// --- Interface ---

type BookService interface {
	GetAll(ctx context.Context) ([]BookResponse, error)
	GetAllWithIncludes(ctx context.Context) ([]BookResponse, error)
	GetBySpecification(ctx context.Context, criteria specification.BookCriteria) ([]BookResponse, error)
	GetBySpecificationWithIncludes(ctx context.Context, criteria specification.BookCriteria) ([]BookResponse, error)
	GetByID(ctx context.Context, id uint) (*BookResponse, error)
	GetByIDWithIncludes(ctx context.Context, id uint) (*BookResponse, error)
	Add(ctx context.Context, req CreateBookRequest) (*BookResponse, error)
	Update(ctx context.Context, req UpdateBookRequest) (*BookResponse, error)
	Delete(ctx context.Context, id uint) error
}

type bookService struct {
	repo       repository.BookRepository
	authorRepo repository.AuthorRepository
	hub        *websocket.Hub
}

// NewBookService returns a new instance of BookService
func NewBookService(repo repository.BookRepository, authorRepo repository.AuthorRepository, hub *websocket.Hub) BookService {
	return &bookService{repo: repo, authorRepo: authorRepo, hub: hub}
}

// --- Validation helpers ---

var validGenres = map[string]bool{
	model.GenreFantasy:        true,
	model.GenreScienceFiction: true,
	model.GenreMystery:        true,
	model.GenreRomance:        true,
	model.GenreHorror:         true,
	model.GenreBiography:      true,
	model.GenreHistory:        true,
	model.GenreAdventure:      true,
}

func validateGenre(genre string) error {
	if !validGenres[genre] {
		return NewDomainError("Invalid genre %q.", genre)
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return NewDomainError("Price cannot be negative.")
	}
	return nil
}

func (s *bookService) authorExists(ctx context.Context, id uint) error {
	if _, err := s.authorRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewDomainError("No Author found with ID %d.", id)
		}
		return err
	}
	return nil
}

// --- Mapping ---

func toBookResponse(b model.Book) BookResponse {
	res := BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Genre:     b.Genre,
		Price:     b.Price,
		AuthorID:  b.AuthorID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.Author != nil {
		author := toAuthorResponse(*b.Author)
		res.Author = &author
	}
	for _, p := range b.Publishers {
		res.Publishers = append(res.Publishers, toPublisherResponse(p))
	}
	return res
}

func toBookResponses(books []model.Book) []BookResponse {
	res := make([]BookResponse, 0, len(books))
	for _, b := range books {
		res = append(res, toBookResponse(b))
	}
	return res
}

// --- CRUD ---

func (s *bookService) GetAll(ctx context.Context) ([]BookResponse, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toBookResponses(books), nil
}

func (s *bookService) GetAllWithIncludes(ctx context.Context) ([]BookResponse, error) {
	books, err := s.repo.GetAllWithIncludes(ctx)
	if err != nil {
		return nil, err
	}
	return toBookResponses(books), nil
}

func (s *bookService) GetBySpecification(ctx context.Context, criteria specification.BookCriteria) ([]BookResponse, error) {
	books, err := s.repo.GetBySpecification(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return toBookResponses(books), nil
}

func (s *bookService) GetBySpecificationWithIncludes(ctx context.Context, criteria specification.BookCriteria) ([]BookResponse, error) {
	books, err := s.repo.GetBySpecificationWithIncludes(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return toBookResponses(books), nil
}

func (s *bookService) GetByID(ctx context.Context, id uint) (*BookResponse, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewDomainError("No Book found with ID %d.", id)
		}
		return nil, err
	}
	res := toBookResponse(*book)
	return &res, nil
}

func (s *bookService) GetByIDWithIncludes(ctx context.Context, id uint) (*BookResponse, error) {
	book, err := s.repo.GetByIDWithIncludes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewDomainError("No Book found with ID %d.", id)
		}
		return nil, err
	}
	res := toBookResponse(*book)
	return &res, nil
}

func (s *bookService) Add(ctx context.Context, req CreateBookRequest) (*BookResponse, error) {
	if err := validateGenre(req.Genre); err != nil {
		return nil, err
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}
	if err := s.authorExists(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	book := &model.Book{
		Title:    req.Title,
		Genre:    req.Genre,
		Price:    req.Price,
		AuthorID: req.AuthorID,
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	s.hub.Notify(websocket.Event{Resource: "book", Action: "created", ID: book.ID})

	res := toBookResponse(*book)
	return &res, nil
}

func (s *bookService) Update(ctx context.Context, req UpdateBookRequest) (*BookResponse, error) {
	book, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewDomainError("Cannot update. No Book found with ID %d.", req.ID)
		}
		return nil, err
	}

	// Only fields present in the payload overwrite stored values
	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Genre != nil {
		if err := validateGenre(*req.Genre); err != nil {
			return nil, err
		}
		book.Genre = *req.Genre
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		book.Price = *req.Price
	}
	if req.AuthorID != nil {
		if err := s.authorExists(ctx, *req.AuthorID); err != nil {
			return nil, err
		}
		book.AuthorID = *req.AuthorID
	}

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	s.hub.Notify(websocket.Event{Resource: "book", Action: "updated", ID: book.ID})

	res := toBookResponse(*book)
	return &res, nil
}

func (s *bookService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewDomainError("Cannot delete. No Book found with ID %d.", id)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Notify(websocket.Event{Resource: "book", Action: "deleted", ID: id})
	return nil
}
