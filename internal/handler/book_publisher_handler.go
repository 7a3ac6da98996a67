package handler

import (
	"net/http"
	"strconv"

	"libraryapi/internal/middleware"
	"libraryapi/internal/model"
	"libraryapi/internal/service"
	"libraryapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type BookPublisherHandler struct {
	bookPublisherService service.BookPublisherService
}

func NewBookPublisherHandler(bookPublisherService service.BookPublisherService) *BookPublisherHandler {
	return &BookPublisherHandler{bookPublisherService: bookPublisherService}
}

// RegisterRoutes binds the BookPublisher endpoints under /libraryApi/BookPublisher.
// The association touches both books and publishers, so writes check the
// union of both claim families.
func (h *BookPublisherHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	writeRoles := middleware.RequireRoles(model.RoleAdmin, model.RoleAuthorsBooksPublisher, model.RoleAuthorsBooks, model.RolePublisher)
	readDeny := middleware.DenyClaims("BooksAccess", "PublishersAccess")
	addDeny := middleware.DenyClaims("BooksCreate", "BooksEdit", "PublishersCreate", "PublishersEdit")
	deleteDeny := middleware.DenyClaims("BooksEdit", "PublishersEdit")

	bookPublishers := router.Group("/BookPublisher", authn)
	{
		bookPublishers.GET("/All", readDeny, h.GetAll)
		bookPublishers.GET("/:bookId/:publisherId", readDeny, h.GetByID)
		bookPublishers.POST("/Add", writeRoles, addDeny, h.Add)
		bookPublishers.POST("/AddRange", writeRoles, addDeny, h.AddRange)
		bookPublishers.DELETE("/Delete/:bookId/:publisherId", writeRoles, deleteDeny, h.Delete)
		bookPublishers.DELETE("/DeleteByBookOrPublisher", writeRoles, deleteDeny, h.DeleteByBookOrPublisher)
	}
}

// GetAll returns every book-publisher association
// @Summary      List book-publisher associations
// @Tags         bookpublishers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /libraryApi/BookPublisher/All [get]
func (h *BookPublisherHandler) GetAll(c *gin.Context) {
	rows, err := h.bookPublisherService.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(rows))
}

// GetByID returns a single association by its composite key
// @Summary      Get association by composite key
// @Tags         bookpublishers
// @Security     BearerAuth
// @Produce      json
// @Param        bookId       path      int  true  "Book ID"
// @Param        publisherId  path      int  true  "Publisher ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/BookPublisher/{bookId}/{publisherId} [get]
func (h *BookPublisherHandler) GetByID(c *gin.Context) {
	bookID, ok := parseID(c, "bookId")
	if !ok {
		return
	}
	publisherID, ok := parseID(c, "publisherId")
	if !ok {
		return
	}

	row, err := h.bookPublisherService.GetByID(c.Request.Context(), bookID, publisherID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(row))
}

// Add creates a book-publisher association
// @Summary      Add association
// @Tags         bookpublishers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.BookPublisherDTO  true  "Association payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/BookPublisher/Add [post]
func (h *BookPublisherHandler) Add(c *gin.Context) {
	var dto service.BookPublisherDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.bookPublisherService.Add(c.Request.Context(), dto); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// AddRange creates a batch of associations
// @Summary      Add associations in bulk
// @Tags         bookpublishers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  []service.BookPublisherDTO  true  "Association batch"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/BookPublisher/AddRange [post]
func (h *BookPublisherHandler) AddRange(c *gin.Context) {
	var dtos []service.BookPublisherDTO
	if err := c.ShouldBindJSON(&dtos); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.bookPublisherService.AddRange(c.Request.Context(), dtos); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// Delete removes a single association by its composite key
// @Summary      Delete association
// @Tags         bookpublishers
// @Security     BearerAuth
// @Produce      json
// @Param        bookId       path      int  true  "Book ID"
// @Param        publisherId  path      int  true  "Publisher ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/BookPublisher/Delete/{bookId}/{publisherId} [delete]
func (h *BookPublisherHandler) Delete(c *gin.Context) {
	bookID, ok := parseID(c, "bookId")
	if !ok {
		return
	}
	publisherID, ok := parseID(c, "publisherId")
	if !ok {
		return
	}

	if err := h.bookPublisherService.Delete(c.Request.Context(), bookID, publisherID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// DeleteByBookOrPublisher removes all associations matching whichever of the
// two optional keys is supplied; supplying neither is a caller error
// @Summary      Delete associations by book or publisher
// @Tags         bookpublishers
// @Security     BearerAuth
// @Produce      json
// @Param        bookId       query     int  false  "Book ID"
// @Param        publisherId  query     int  false  "Publisher ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/BookPublisher/DeleteByBookOrPublisher [delete]
func (h *BookPublisherHandler) DeleteByBookOrPublisher(c *gin.Context) {
	var bookID, publisherID *uint

	if raw := optQuery(c, "bookId"); raw != nil {
		parsed, err := strconv.ParseUint(*raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Message("Invalid bookId"))
			return
		}
		id := uint(parsed)
		bookID = &id
	}
	if raw := optQuery(c, "publisherId"); raw != nil {
		parsed, err := strconv.ParseUint(*raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Message("Invalid publisherId"))
			return
		}
		id := uint(parsed)
		publisherID = &id
	}

	if err := h.bookPublisherService.DeleteByBookOrPublisher(c.Request.Context(), bookID, publisherID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}
