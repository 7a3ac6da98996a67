package repository_test

import (
	"context"
	"regexp"
	"testing"

	"libraryapi/internal/repository"
	"libraryapi/internal/specification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestBookSpecificationNoCriteria(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewBookRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "books"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "genre", "price", "author_id"}).
			AddRow(1, "Dune", "ScienceFiction", "12.50", 1).
			AddRow(2, "Emma", "Romance", "8.00", 2))

	books, err := repo.GetBySpecification(context.Background(), specification.BookCriteria{})
	require.NoError(t, err)
	assert.Len(t, books, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookSpecificationAllCriteria(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewBookRepository(db)

	title := "dune"
	genre := "ScienceFiction"
	minPrice := decimal.NewFromInt(5)
	maxPrice := decimal.NewFromInt(20)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "books" WHERE title ILIKE $1 AND genre = $2 AND price >= $3 AND price <= $4`)).
		WithArgs("%dune%", genre, minPrice, maxPrice).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "genre", "price", "author_id"}).
			AddRow(1, "Dune", "ScienceFiction", "12.50", 1))

	books, err := repo.GetBySpecification(context.Background(), specification.BookCriteria{
		Title:    &title,
		Genre:    &genre,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
	assert.True(t, books[0].Price.Equal(decimal.NewFromFloat(12.50)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookSpecificationPriceRangeOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewBookRepository(db)

	minPrice := decimal.NewFromInt(10)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "books" WHERE price >= $1`)).
		WithArgs(minPrice).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "genre", "price", "author_id"}))

	books, err := repo.GetBySpecification(context.Background(), specification.BookCriteria{MinPrice: &minPrice})
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorSpecificationNameSubstring(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAuthorRepository(db)

	name := "guin"

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "authors" WHERE name ILIKE $1`)).
		WithArgs("%guin%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Ursula K. Le Guin"))

	authors, err := repo.GetBySpecification(context.Background(), specification.AuthorCriteria{Name: &name})
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, "Ursula K. Le Guin", authors[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublisherSpecificationNameAndCountry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewPublisherRepository(db)

	name := "pen"
	country := "uk"

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "publishers" WHERE name ILIKE $1 AND country ILIKE $2`)).
		WithArgs("%pen%", "%uk%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "country"}).
			AddRow(1, "Penguin", "UK"))

	publishers, err := repo.GetBySpecification(context.Background(), specification.PublisherCriteria{
		Name:    &name,
		Country: &country,
	})
	require.NoError(t, err)
	require.Len(t, publishers, 1)
	assert.Equal(t, "Penguin", publishers[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
