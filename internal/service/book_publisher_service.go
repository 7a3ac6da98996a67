package service

import (
	"context"
	"errors"

	"libraryapi/internal/model"
	"libraryapi/internal/repository"
	"libraryapi/internal/websocket"

	"gorm.io/gorm"
)

// --- DTOs ---

type BookPublisherDTO struct {
	BookID      uint `json:"book_id" binding:"required"`
	PublisherID uint `json:"publisher_id" binding:"required"`
}

// --- Interface ---

type BookPublisherService interface {
	GetAll(ctx context.Context) ([]BookPublisherDTO, error)
	GetByID(ctx context.Context, bookID, publisherID uint) (*BookPublisherDTO, error)
	Add(ctx context.Context, dto BookPublisherDTO) error
	AddRange(ctx context.Context, dtos []BookPublisherDTO) error
	Delete(ctx context.Context, bookID, publisherID uint) error
	DeleteByBookOrPublisher(ctx context.Context, bookID, publisherID *uint) error
}

type bookPublisherService struct {
	repo      repository.BookPublisherRepository
	txManager repository.TransactionManager
	hub       *websocket.Hub
}

// NewBookPublisherService returns a new instance of BookPublisherService
func NewBookPublisherService(repo repository.BookPublisherRepository, txManager repository.TransactionManager, hub *websocket.Hub) BookPublisherService {
	return &bookPublisherService{repo: repo, txManager: txManager, hub: hub}
}

// --- Operations ---

func (s *bookPublisherService) GetAll(ctx context.Context) ([]BookPublisherDTO, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]BookPublisherDTO, 0, len(rows))
	for _, row := range rows {
		res = append(res, BookPublisherDTO{BookID: row.BookID, PublisherID: row.PublisherID})
	}
	return res, nil
}

func (s *bookPublisherService) GetByID(ctx context.Context, bookID, publisherID uint) (*BookPublisherDTO, error) {
	row, err := s.repo.GetByID(ctx, bookID, publisherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewDomainError("No BookPublisher found with BookID %d and PublisherID %d.", bookID, publisherID)
		}
		return nil, err
	}
	return &BookPublisherDTO{BookID: row.BookID, PublisherID: row.PublisherID}, nil
}

func (s *bookPublisherService) Add(ctx context.Context, dto BookPublisherDTO) error {
	if dto.BookID == 0 || dto.PublisherID == 0 {
		return NewDomainError("Cannot add a BookPublisher without both a BookID and a PublisherID.")
	}

	if err := s.repo.Create(ctx, &model.BookPublisher{BookID: dto.BookID, PublisherID: dto.PublisherID}); err != nil {
		return err
	}

	s.hub.Notify(websocket.Event{Resource: "bookpublisher", Action: "created"})
	return nil
}

// AddRange inserts the whole batch inside one transaction, so a constraint
// failure on any row rolls back the rest.
func (s *bookPublisherService) AddRange(ctx context.Context, dtos []BookPublisherDTO) error {
	if len(dtos) == 0 {
		return NewDomainError("Cannot add an empty BookPublisher batch.")
	}

	rows := make([]model.BookPublisher, 0, len(dtos))
	for _, dto := range dtos {
		if dto.BookID == 0 || dto.PublisherID == 0 {
			return NewDomainError("Cannot add a BookPublisher without both a BookID and a PublisherID.")
		}
		rows = append(rows, model.BookPublisher{BookID: dto.BookID, PublisherID: dto.PublisherID})
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.CreateRange(txCtx, rows)
	})
	if err != nil {
		return err
	}

	s.hub.Notify(websocket.Event{Resource: "bookpublisher", Action: "created"})
	return nil
}

func (s *bookPublisherService) Delete(ctx context.Context, bookID, publisherID uint) error {
	if _, err := s.repo.GetByID(ctx, bookID, publisherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewDomainError("Cannot delete. No BookPublisher found with BookID %d and PublisherID %d.", bookID, publisherID)
		}
		return err
	}

	if err := s.repo.Delete(ctx, bookID, publisherID); err != nil {
		return err
	}

	s.hub.Notify(websocket.Event{Resource: "bookpublisher", Action: "deleted"})
	return nil
}

// DeleteByBookOrPublisher removes all association rows matching whichever key
// is supplied. Supplying neither would be a blanket delete, so it is rejected
// as a caller error.
func (s *bookPublisherService) DeleteByBookOrPublisher(ctx context.Context, bookID, publisherID *uint) error {
	if bookID == nil && publisherID == nil {
		return NewDomainError("At least one of bookId or publisherId must be supplied.")
	}

	if err := s.repo.DeleteByBookOrPublisher(ctx, bookID, publisherID); err != nil {
		return err
	}

	s.hub.Notify(websocket.Event{Resource: "bookpublisher", Action: "deleted"})
	return nil
}
