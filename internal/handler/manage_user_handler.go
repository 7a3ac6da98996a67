package handler

import (
	"net/http"

	"libraryapi/internal/middleware"
	"libraryapi/internal/service"
	"libraryapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type ManageUserHandler struct {
	manageUserService service.ManageUserService
}

func NewManageUserHandler(manageUserService service.ManageUserService) *ManageUserHandler {
	return &ManageUserHandler{manageUserService: manageUserService}
}

// RegisterRoutes binds the ManageUser endpoints under /libraryApi/ManageUser.
// All operations act on the caller's own account, resolved from the token.
func (h *ManageUserHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	users := router.Group("/ManageUser", authn)
	{
		users.GET("/Roles", h.GetRoles)
		users.GET("/Claims", h.GetClaims)
		users.POST("/AddRole/:role", h.AddRole)
		users.POST("/AddRoles", h.AddRoles)
		users.DELETE("/RemoveRole/:role", h.RemoveRole)
		users.DELETE("/RemoveRoles", h.RemoveRoles)
		users.POST("/AddClaim", h.AddClaim)
		users.POST("/AddClaims", h.AddClaims)
		users.DELETE("/RemoveClaim", h.RemoveClaim)
		users.DELETE("/RemoveClaims", h.RemoveClaims)
		users.PUT("/ReplaceClaim", h.ReplaceClaim)
	}
}

func (h *ManageUserHandler) username(c *gin.Context) (string, bool) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Message("Unauthorized"))
		return "", false
	}
	return username, true
}

// GetRoles lists the caller's roles
// @Summary      List own roles
// @Tags         manageuser
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /libraryApi/ManageUser/Roles [get]
func (h *ManageUserHandler) GetRoles(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	roles, err := h.manageUserService.GetRoles(c.Request.Context(), username)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(roles))
}

// GetClaims lists the caller's stored claims
// @Summary      List own claims
// @Tags         manageuser
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /libraryApi/ManageUser/Claims [get]
func (h *ManageUserHandler) GetClaims(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	claims, err := h.manageUserService.GetClaims(c.Request.Context(), username)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(claims))
}

// AddRole grants the caller a registered role
// @Summary      Add a role
// @Tags         manageuser
// @Security     BearerAuth
// @Produce      json
// @Param        role  path  string  true  "Role name"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/ManageUser/AddRole/{role} [post]
func (h *ManageUserHandler) AddRole(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	if err := h.manageUserService.AddRole(c.Request.Context(), username, c.Param("role")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// AddRoles grants the caller a batch of registered roles
// @Summary      Add roles in bulk
// @Tags         manageuser
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  []string  true  "Role names"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/ManageUser/AddRoles [post]
func (h *ManageUserHandler) AddRoles(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	var roles []string
	if err := c.ShouldBindJSON(&roles); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.manageUserService.AddRoles(c.Request.Context(), username, roles); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// RemoveRole revokes a role the caller holds
// @Summary      Remove a role
// @Tags         manageuser
// @Security     BearerAuth
// @Produce      json
// @Param        role  path  string  true  "Role name"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/ManageUser/RemoveRole/{role} [delete]
func (h *ManageUserHandler) RemoveRole(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	if err := h.manageUserService.RemoveRole(c.Request.Context(), username, c.Param("role")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// RemoveRoles revokes a batch of roles the caller holds
// @Summary      Remove roles in bulk
// @Tags         manageuser
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  []string  true  "Role names"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/ManageUser/RemoveRoles [delete]
func (h *ManageUserHandler) RemoveRoles(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	var roles []string
	if err := c.ShouldBindJSON(&roles); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.manageUserService.RemoveRoles(c.Request.Context(), username, roles); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// AddClaim stores a claim on the caller's account
// @Summary      Add a claim
// @Tags         manageuser
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.ClaimDTO  true  "Claim payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/ManageUser/AddClaim [post]
func (h *ManageUserHandler) AddClaim(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	var claim service.ClaimDTO
	if err := c.ShouldBindJSON(&claim); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.manageUserService.AddClaim(c.Request.Context(), username, claim); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// AddClaims stores a batch of claims on the caller's account
// @Summary      Add claims in bulk
// @Tags         manageuser
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  []service.ClaimDTO  true  "Claim batch"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/ManageUser/AddClaims [post]
func (h *ManageUserHandler) AddClaims(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	var claims []service.ClaimDTO
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.manageUserService.AddClaims(c.Request.Context(), username, claims); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// RemoveClaim deletes a stored claim from the caller's account
// @Summary      Remove a claim
// @Tags         manageuser
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.ClaimDTO  true  "Claim payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/ManageUser/RemoveClaim [delete]
func (h *ManageUserHandler) RemoveClaim(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	var claim service.ClaimDTO
	if err := c.ShouldBindJSON(&claim); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.manageUserService.RemoveClaim(c.Request.Context(), username, claim); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// RemoveClaims deletes a batch of stored claims from the caller's account
// @Summary      Remove claims in bulk
// @Tags         manageuser
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  []service.ClaimDTO  true  "Claim batch"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/ManageUser/RemoveClaims [delete]
func (h *ManageUserHandler) RemoveClaims(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	var claims []service.ClaimDTO
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.manageUserService.RemoveClaims(c.Request.Context(), username, claims); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// ReplaceClaim swaps one stored claim for another atomically
// @Summary      Replace a claim
// @Tags         manageuser
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.ReplaceClaimRequest  true  "Replacement payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/ManageUser/ReplaceClaim [put]
func (h *ManageUserHandler) ReplaceClaim(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	var req service.ReplaceClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.manageUserService.ReplaceClaim(c.Request.Context(), username, req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}
