package handler

import (
	"net/http"

	"libraryapi/internal/middleware"
	"libraryapi/internal/model"
	"libraryapi/internal/service"
	"libraryapi/internal/specification"
	"libraryapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	authorService service.AuthorService
}

func NewAuthorHandler(authorService service.AuthorService) *AuthorHandler {
	return &AuthorHandler{authorService: authorService}
}

// RegisterRoutes binds the Author endpoints under /libraryApi/Author
func (h *AuthorHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	readRoles := middleware.RequireRoles(model.RoleAdmin, model.RoleAuthorsBooksPublisher, model.RoleAuthorsBooks, model.RoleViewAuthorsBooks)
	writeRoles := middleware.RequireRoles(model.RoleAdmin, model.RoleAuthorsBooksPublisher, model.RoleAuthorsBooks)

	authors := router.Group("/Author", authn)
	{
		authors.GET("/All", readRoles, middleware.DenyClaims("AuthorsAccess"), h.GetAll)
		authors.GET("/AllWithIncludes", readRoles, middleware.DenyClaims("AuthorsAccess"), h.GetAllWithIncludes)
		authors.GET("/Specification", readRoles, middleware.DenyClaims("AuthorsAccess"), h.GetBySpecification)
		authors.GET("/SpecificationWithIncludes", readRoles, middleware.DenyClaims("AuthorsAccess"), h.GetBySpecificationWithIncludes)
		authors.GET("/:id", readRoles, middleware.DenyClaims("AuthorsAccess"), h.GetByID)
		authors.GET("/WithIncludes/:id", readRoles, middleware.DenyClaims("AuthorsAccess"), h.GetByIDWithIncludes)
		authors.POST("/Add", writeRoles, middleware.DenyClaims("AuthorsCreate"), h.Add)
		authors.PUT("/Update", writeRoles, middleware.DenyClaims("AuthorsEdit"), h.Update)
		authors.DELETE("/Delete/:id", writeRoles, middleware.DenyClaims("AuthorsDelete"), h.Delete)
	}
}

// GetAll returns every author
// @Summary      List authors
// @Tags         authors
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /libraryApi/Author/All [get]
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.authorService.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(authors))
}

// GetAllWithIncludes returns every author with their books eager-loaded
// @Summary      List authors with books
// @Tags         authors
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /libraryApi/Author/AllWithIncludes [get]
func (h *AuthorHandler) GetAllWithIncludes(c *gin.Context) {
	authors, err := h.authorService.GetAllWithIncludes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(authors))
}

// GetBySpecification returns authors matching the optional name filter
// @Summary      Filter authors
// @Tags         authors
// @Security     BearerAuth
// @Produce      json
// @Param        name  query     string  false  "Name substring"
// @Success      200   {object}  response.Envelope
// @Router       /libraryApi/Author/Specification [get]
func (h *AuthorHandler) GetBySpecification(c *gin.Context) {
	criteria := specification.AuthorCriteria{Name: optQuery(c, "name")}

	authors, err := h.authorService.GetBySpecification(c.Request.Context(), criteria)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(authors))
}

// GetBySpecificationWithIncludes filters authors and eager-loads their books
// @Summary      Filter authors with books
// @Tags         authors
// @Security     BearerAuth
// @Produce      json
// @Param        name  query     string  false  "Name substring"
// @Success      200   {object}  response.Envelope
// @Router       /libraryApi/Author/SpecificationWithIncludes [get]
func (h *AuthorHandler) GetBySpecificationWithIncludes(c *gin.Context) {
	criteria := specification.AuthorCriteria{Name: optQuery(c, "name")}

	authors, err := h.authorService.GetBySpecificationWithIncludes(c.Request.Context(), criteria)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(authors))
}

// GetByID returns a single author
// @Summary      Get author by ID
// @Tags         authors
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Author ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Author/{id} [get]
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	author, err := h.authorService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(author))
}

// GetByIDWithIncludes returns a single author with books eager-loaded
// @Summary      Get author by ID with books
// @Tags         authors
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Author ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Author/WithIncludes/{id} [get]
func (h *AuthorHandler) GetByIDWithIncludes(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	author, err := h.authorService.GetByIDWithIncludes(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(author))
}

// Add creates a new author
// @Summary      Add author
// @Tags         authors
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateAuthorRequest  true  "Author payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Author/Add [post]
func (h *AuthorHandler) Add(c *gin.Context) {
	var req service.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if _, err := h.authorService.Add(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// Update partially updates an author; absent fields keep their stored values
// @Summary      Update author
// @Tags         authors
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.UpdateAuthorRequest  true  "Update payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Author/Update [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	var req service.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if _, err := h.authorService.Update(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// Delete removes an author
// @Summary      Delete author
// @Tags         authors
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Author ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Author/Delete/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.authorService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}
