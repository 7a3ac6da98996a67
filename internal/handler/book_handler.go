package handler

import (
	"net/http"

	"libraryapi/internal/middleware"
	"libraryapi/internal/model"
	"libraryapi/internal/service"
	"libraryapi/internal/specification"
	"libraryapi/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BookHandler struct {
	bookService service.BookService
}

func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// RegisterRoutes binds the Book endpoints under /libraryApi/Book
func (h *BookHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	readRoles := middleware.RequireRoles(model.RoleAdmin, model.RoleAuthorsBooksPublisher, model.RoleAuthorsBooks, model.RoleViewAuthorsBooks)
	writeRoles := middleware.RequireRoles(model.RoleAdmin, model.RoleAuthorsBooksPublisher, model.RoleAuthorsBooks)

	books := router.Group("/Book", authn)
	{
		books.GET("/All", readRoles, middleware.DenyClaims("BooksAccess"), h.GetAll)
		books.GET("/AllWithIncludes", readRoles, middleware.DenyClaims("BooksAccess"), h.GetAllWithIncludes)
		books.GET("/Specification", readRoles, middleware.DenyClaims("BooksAccess"), h.GetBySpecification)
		books.GET("/SpecificationWithIncludes", readRoles, middleware.DenyClaims("BooksAccess"), h.GetBySpecificationWithIncludes)
		books.GET("/:id", readRoles, middleware.DenyClaims("BooksAccess"), h.GetByID)
		books.GET("/WithIncludes/:id", readRoles, middleware.DenyClaims("BooksAccess"), h.GetByIDWithIncludes)
		books.POST("/Add", writeRoles, middleware.DenyClaims("BooksCreate"), h.Add)
		books.PUT("/Update", writeRoles, middleware.DenyClaims("BooksEdit"), h.Update)
		books.DELETE("/Delete/:id", writeRoles, middleware.DenyClaims("BooksDelete"), h.Delete)
	}
}

// bookCriteria extracts the optional title/genre/price filters from the query
// string. A malformed price bound is a caller error.
func bookCriteria(c *gin.Context) (specification.BookCriteria, bool) {
	criteria := specification.BookCriteria{
		Title: optQuery(c, "title"),
		Genre: optQuery(c, "genre"),
	}

	if raw := optQuery(c, "minPrice"); raw != nil {
		parsed, err := decimal.NewFromString(*raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Message("Invalid minPrice"))
			return criteria, false
		}
		criteria.MinPrice = &parsed
	}
	if raw := optQuery(c, "maxPrice"); raw != nil {
		parsed, err := decimal.NewFromString(*raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Message("Invalid maxPrice"))
			return criteria, false
		}
		criteria.MaxPrice = &parsed
	}

	return criteria, true
}

// GetAll returns every book
// @Summary      List books
// @Tags         books
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /libraryApi/Book/All [get]
func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.bookService.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(books))
}

// GetAllWithIncludes returns every book with author and publishers eager-loaded
// @Summary      List books with author and publishers
// @Tags         books
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /libraryApi/Book/AllWithIncludes [get]
func (h *BookHandler) GetAllWithIncludes(c *gin.Context) {
	books, err := h.bookService.GetAllWithIncludes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(books))
}

// GetBySpecification returns books matching the optional filters
// @Summary      Filter books
// @Tags         books
// @Security     BearerAuth
// @Produce      json
// @Param        title     query     string  false  "Title substring"
// @Param        genre     query     string  false  "Exact genre"
// @Param        minPrice  query     string  false  "Minimum price (inclusive)"
// @Param        maxPrice  query     string  false  "Maximum price (inclusive)"
// @Success      200       {object}  response.Envelope
// @Router       /libraryApi/Book/Specification [get]
func (h *BookHandler) GetBySpecification(c *gin.Context) {
	criteria, ok := bookCriteria(c)
	if !ok {
		return
	}

	books, err := h.bookService.GetBySpecification(c.Request.Context(), criteria)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(books))
}

// GetBySpecificationWithIncludes filters books and eager-loads relations
// @Summary      Filter books with author and publishers
// @Tags         books
// @Security     BearerAuth
// @Produce      json
// @Param        title     query     string  false  "Title substring"
// @Param        genre     query     string  false  "Exact genre"
// @Param        minPrice  query     string  false  "Minimum price (inclusive)"
// @Param        maxPrice  query     string  false  "Maximum price (inclusive)"
// @Success      200       {object}  response.Envelope
// @Router       /libraryApi/Book/SpecificationWithIncludes [get]
func (h *BookHandler) GetBySpecificationWithIncludes(c *gin.Context) {
	criteria, ok := bookCriteria(c)
	if !ok {
		return
	}

	books, err := h.bookService.GetBySpecificationWithIncludes(c.Request.Context(), criteria)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(books))
}

// GetByID returns a single book
// @Summary      Get book by ID
// @Tags         books
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Book ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Book/{id} [get]
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	book, err := h.bookService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(book))
}

// GetByIDWithIncludes returns a single book with relations eager-loaded
// @Summary      Get book by ID with author and publishers
// @Tags         books
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Book ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Book/WithIncludes/{id} [get]
func (h *BookHandler) GetByIDWithIncludes(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	book, err := h.bookService.GetByIDWithIncludes(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(book))
}

// Add creates a new book
// @Summary      Add book
// @Tags         books
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateBookRequest  true  "Book payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Book/Add [post]
func (h *BookHandler) Add(c *gin.Context) {
	var req service.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if _, err := h.bookService.Add(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// Update partially updates a book; absent fields keep their stored values
// @Summary      Update book
// @Tags         books
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.UpdateBookRequest  true  "Update payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Book/Update [put]
func (h *BookHandler) Update(c *gin.Context) {
	var req service.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if _, err := h.bookService.Update(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// Delete removes a book
// @Summary      Delete book
// @Tags         books
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Book ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Book/Delete/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.bookService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}
