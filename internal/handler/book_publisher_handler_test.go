package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/handler"
	"libraryapi/internal/middleware"
	"libraryapi/internal/model"
	"libraryapi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

type stubBookPublisherService struct {
	deleteCalls int
}

func (s *stubBookPublisherService) GetAll(context.Context) ([]service.BookPublisherDTO, error) {
	return []service.BookPublisherDTO{}, nil
}

func (s *stubBookPublisherService) GetByID(_ context.Context, bookID, publisherID uint) (*service.BookPublisherDTO, error) {
	return &service.BookPublisherDTO{BookID: bookID, PublisherID: publisherID}, nil
}

func (s *stubBookPublisherService) Add(context.Context, service.BookPublisherDTO) error {
	return nil
}

func (s *stubBookPublisherService) AddRange(context.Context, []service.BookPublisherDTO) error {
	return nil
}

func (s *stubBookPublisherService) Delete(context.Context, uint, uint) error {
	s.deleteCalls++
	return nil
}

func (s *stubBookPublisherService) DeleteByBookOrPublisher(context.Context, *uint, *uint) error {
	s.deleteCalls++
	return nil
}

func newBookPublisherRouter(svc service.BookPublisherService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/libraryApi")
	handler.NewBookPublisherHandler(svc).RegisterRoutes(api, middleware.Authenticate(routeTestSettings))
	return router
}

// Association deletes belong to the edit claim family covering both sides of
// the association: a BooksEdit revocation blocks them even for an admin.
func TestBookPublisherDeleteBlockedByEditRevocation(t *testing.T) {
	svc := &stubBookPublisherService{}
	router := newBookPublisherRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/libraryApi/BookPublisher/Delete/1/2", nil)
	req.Header.Set("Authorization", "Bearer "+mintRouteToken(t, jwt.MapClaims{
		"roles":     []string{model.RoleAdmin},
		"BooksEdit": "false",
	}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, svc.deleteCalls)
}

func TestBookPublisherDeleteByBookOrPublisherBlockedByEditRevocation(t *testing.T) {
	svc := &stubBookPublisherService{}
	router := newBookPublisherRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/libraryApi/BookPublisher/DeleteByBookOrPublisher?bookId=1", nil)
	req.Header.Set("Authorization", "Bearer "+mintRouteToken(t, jwt.MapClaims{
		"roles":          []string{model.RolePublisher},
		"PublishersEdit": "false",
	}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, svc.deleteCalls)
}

func TestBookPublisherDeleteAllowedWithoutRevocation(t *testing.T) {
	svc := &stubBookPublisherService{}
	router := newBookPublisherRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/libraryApi/BookPublisher/Delete/1/2", nil)
	req.Header.Set("Authorization", "Bearer "+mintRouteToken(t, jwt.MapClaims{
		"roles": []string{model.RoleAdmin},
	}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.deleteCalls)
}
