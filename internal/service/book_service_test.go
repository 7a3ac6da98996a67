package service_test

import (
	"context"
	"testing"

	"libraryapi/internal/model"
	"libraryapi/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookService(t *testing.T) (service.BookService, *fakeBookRepo, *fakeAuthorRepo) {
	t.Helper()
	bookRepo := newFakeBookRepo()
	authorRepo := newFakeAuthorRepo()
	return service.NewBookService(bookRepo, authorRepo, nil), bookRepo, authorRepo
}

func TestBookAdd(t *testing.T) {
	svc, _, authorRepo := newBookService(t)
	author := authorRepo.addAuthor("Frank Herbert")

	created, err := svc.Add(context.Background(), service.CreateBookRequest{
		Title:    "Dune",
		Genre:    model.GenreScienceFiction,
		Price:    decimal.NewFromFloat(12.50),
		AuthorID: author.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Dune", created.Title)
	assert.True(t, created.Price.Equal(decimal.NewFromFloat(12.50)))
}

func TestBookAddRejectsUnknownGenre(t *testing.T) {
	svc, _, authorRepo := newBookService(t)
	author := authorRepo.addAuthor("Someone")

	_, err := svc.Add(context.Background(), service.CreateBookRequest{
		Title:    "Bad Genre",
		Genre:    "Cookbook",
		AuthorID: author.ID,
	})
	require.Error(t, err)
	assert.True(t, service.IsDomainError(err))
}

func TestBookAddRejectsNegativePrice(t *testing.T) {
	svc, _, authorRepo := newBookService(t)
	author := authorRepo.addAuthor("Someone")

	_, err := svc.Add(context.Background(), service.CreateBookRequest{
		Title:    "Free Money",
		Genre:    model.GenreFantasy,
		Price:    decimal.NewFromInt(-1),
		AuthorID: author.ID,
	})
	require.Error(t, err)
	assert.True(t, service.IsDomainError(err))
	assert.EqualError(t, err, "Price cannot be negative.")
}

func TestBookAddRejectsMissingAuthor(t *testing.T) {
	svc, _, _ := newBookService(t)

	_, err := svc.Add(context.Background(), service.CreateBookRequest{
		Title:    "Orphaned",
		Genre:    model.GenreMystery,
		AuthorID: 99,
	})
	require.Error(t, err)
	assert.True(t, service.IsDomainError(err))
	assert.EqualError(t, err, "No Author found with ID 99.")
}

func TestBookUpdatePartial(t *testing.T) {
	svc, _, authorRepo := newBookService(t)
	author := authorRepo.addAuthor("Frank Herbert")

	created, err := svc.Add(context.Background(), service.CreateBookRequest{
		Title:    "Dune",
		Genre:    model.GenreScienceFiction,
		Price:    decimal.NewFromFloat(12.50),
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	// Only the price changes, everything else keeps its stored value
	price := decimal.NewFromFloat(9.99)
	updated, err := svc.Update(context.Background(), service.UpdateBookRequest{ID: created.ID, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Dune", updated.Title)
	assert.Equal(t, model.GenreScienceFiction, updated.Genre)
	assert.True(t, updated.Price.Equal(price))
}

func TestBookUpdateValidatesGenre(t *testing.T) {
	svc, _, authorRepo := newBookService(t)
	author := authorRepo.addAuthor("Someone")

	created, err := svc.Add(context.Background(), service.CreateBookRequest{
		Title:    "Fine",
		Genre:    model.GenreHorror,
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	genre := "NotAGenre"
	_, err = svc.Update(context.Background(), service.UpdateBookRequest{ID: created.ID, Genre: &genre})
	require.Error(t, err)
	assert.True(t, service.IsDomainError(err))
}

func TestBookDeleteNotFound(t *testing.T) {
	svc, _, _ := newBookService(t)

	err := svc.Delete(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, service.IsDomainError(err))
	assert.EqualError(t, err, "Cannot delete. No Book found with ID 5.")
}
