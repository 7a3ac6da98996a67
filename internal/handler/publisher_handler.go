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

type PublisherHandler struct {
	publisherService service.PublisherService
}

func NewPublisherHandler(publisherService service.PublisherService) *PublisherHandler {
	return &PublisherHandler{publisherService: publisherService}
}

// RegisterRoutes binds the Publisher endpoints under /libraryApi/Publisher
func (h *PublisherHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	roles := middleware.RequireRoles(model.RoleAdmin, model.RoleAuthorsBooksPublisher, model.RolePublisher)

	publishers := router.Group("/Publisher", authn)
	{
		publishers.GET("/All", roles, middleware.DenyClaims("PublishersAccess"), h.GetAll)
		publishers.GET("/AllWithIncludes", roles, middleware.DenyClaims("PublishersAccess"), h.GetAllWithIncludes)
		publishers.GET("/Specification", roles, middleware.DenyClaims("PublishersAccess"), h.GetBySpecification)
		publishers.GET("/SpecificationWithIncludes", roles, middleware.DenyClaims("PublishersAccess"), h.GetBySpecificationWithIncludes)
		publishers.GET("/:id", roles, middleware.DenyClaims("PublishersAccess"), h.GetByID)
		publishers.GET("/WithIncludes/:id", roles, middleware.DenyClaims("PublishersAccess"), h.GetByIDWithIncludes)
		publishers.POST("/Add", roles, middleware.DenyClaims("PublishersCreate"), h.Add)
		publishers.PUT("/Update", roles, middleware.DenyClaims("PublishersEdit"), h.Update)
		publishers.DELETE("/Delete/:id", roles, middleware.DenyClaims("PublishersDelete"), h.Delete)
	}
}

// GetAll returns every publisher
// @Summary      List publishers
// @Tags         publishers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /libraryApi/Publisher/All [get]
func (h *PublisherHandler) GetAll(c *gin.Context) {
	publishers, err := h.publisherService.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(publishers))
}

// GetAllWithIncludes returns every publisher with their books eager-loaded
// @Summary      List publishers with books
// @Tags         publishers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /libraryApi/Publisher/AllWithIncludes [get]
func (h *PublisherHandler) GetAllWithIncludes(c *gin.Context) {
	publishers, err := h.publisherService.GetAllWithIncludes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(publishers))
}

// GetBySpecification returns publishers matching the optional filters
// @Summary      Filter publishers
// @Tags         publishers
// @Security     BearerAuth
// @Produce      json
// @Param        name     query     string  false  "Name substring"
// @Param        country  query     string  false  "Country substring"
// @Success      200      {object}  response.Envelope
// @Router       /libraryApi/Publisher/Specification [get]
func (h *PublisherHandler) GetBySpecification(c *gin.Context) {
	criteria := specification.PublisherCriteria{
		Name:    optQuery(c, "name"),
		Country: optQuery(c, "country"),
	}

	publishers, err := h.publisherService.GetBySpecification(c.Request.Context(), criteria)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(publishers))
}

// GetBySpecificationWithIncludes filters publishers and eager-loads their books
// @Summary      Filter publishers with books
// @Tags         publishers
// @Security     BearerAuth
// @Produce      json
// @Param        name     query     string  false  "Name substring"
// @Param        country  query     string  false  "Country substring"
// @Success      200      {object}  response.Envelope
// @Router       /libraryApi/Publisher/SpecificationWithIncludes [get]
func (h *PublisherHandler) GetBySpecificationWithIncludes(c *gin.Context) {
	criteria := specification.PublisherCriteria{
		Name:    optQuery(c, "name"),
		Country: optQuery(c, "country"),
	}

	publishers, err := h.publisherService.GetBySpecificationWithIncludes(c.Request.Context(), criteria)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(publishers))
}

// GetByID returns a single publisher
// @Summary      Get publisher by ID
// @Tags         publishers
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Publisher ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Publisher/{id} [get]
func (h *PublisherHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	publisher, err := h.publisherService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(publisher))
}

// GetByIDWithIncludes returns a single publisher with books eager-loaded
// @Summary      Get publisher by ID with books
// @Tags         publishers
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Publisher ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Publisher/WithIncludes/{id} [get]
func (h *PublisherHandler) GetByIDWithIncludes(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	publisher, err := h.publisherService.GetByIDWithIncludes(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(publisher))
}

// Add creates a new publisher
// @Summary      Add publisher
// @Tags         publishers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreatePublisherRequest  true  "Publisher payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Publisher/Add [post]
func (h *PublisherHandler) Add(c *gin.Context) {
	var req service.CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if _, err := h.publisherService.Add(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// Update partially updates a publisher; absent fields keep their stored values
// @Summary      Update publisher
// @Tags         publishers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.UpdatePublisherRequest  true  "Update payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Publisher/Update [put]
func (h *PublisherHandler) Update(c *gin.Context) {
	var req service.UpdatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if _, err := h.publisherService.Update(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// Delete removes a publisher
// @Summary      Delete publisher
// @Tags         publishers
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Publisher ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Publisher/Delete/{id} [delete]
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.publisherService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}
