package handler

import (
	"errors"
	"net/http"

	"libraryapi/internal/middleware"
	"libraryapi/internal/model"
	"libraryapi/internal/service"
	"libraryapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountService service.AccountService
}

func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// RegisterRoutes binds the Account endpoints under /libraryApi/Account.
// Register and Login are open; everything else needs a bearer token, and
// the user listing plus deletion are admin-only.
func (h *AccountHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	adminOnly := middleware.RequireRoles(model.RoleAdmin)

	accounts := router.Group("/Account")
	{
		accounts.POST("/Register", h.Register)
		accounts.POST("/Login", h.Login)
		accounts.GET("/Profile", authn, h.Profile)
		accounts.GET("/all-users", authn, adminOnly, h.GetAll)
		accounts.PUT("/Update", authn, h.Update)
		accounts.PUT("/ChangePassword", authn, h.ChangePassword)
		accounts.DELETE("/Delete", authn, adminOnly, h.Delete)
	}
}

// Register creates a new user account
// @Summary      Register a user
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        payload  body  service.RegisterUserRequest  true  "Registration payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Account/Register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req service.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	user, err := h.accountService.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(user))
}

// Login authenticates a user and returns a signed token
// @Summary      Log in
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        payload  body  service.LoginUserRequest  true  "Login payload"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /libraryApi/Account/Login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req service.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	token, err := h.accountService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLogin) {
			c.JSON(http.StatusUnauthorized, response.Message("Invalid login attempt."))
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(token))
}

// Profile returns the authenticated user's account details
// @Summary      Get own profile
// @Tags         accounts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /libraryApi/Account/Profile [get]
func (h *AccountHandler) Profile(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Message("Unauthorized"))
		return
	}

	user, err := h.accountService.GetProfile(c.Request.Context(), username)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(user))
}

// GetAll lists every registered user
// @Summary      List users
// @Tags         accounts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /libraryApi/Account/all-users [get]
func (h *AccountHandler) GetAll(c *gin.Context) {
	users, err := h.accountService.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(users))
}

// Update changes the authenticated user's profile details
// @Summary      Update own profile
// @Tags         accounts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.UpdateProfileRequest  true  "Profile payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Account/Update [put]
func (h *AccountHandler) Update(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Message("Unauthorized"))
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	user, err := h.accountService.UpdateProfile(c.Request.Context(), username, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(user))
}

// ChangePassword replaces the authenticated user's password
// @Summary      Change own password
// @Tags         accounts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.ChangePasswordRequest  true  "Password payload"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /libraryApi/Account/ChangePassword [put]
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Message("Unauthorized"))
		return
	}

	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.accountService.ChangePassword(c.Request.Context(), username, req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}

// Delete removes a user account by ID
// @Summary      Delete a user
// @Tags         accounts
// @Security     BearerAuth
// @Produce      json
// @Param        id  query  string  true  "User ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /libraryApi/Account/Delete [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.Message("Missing user ID."))
		return
	}

	if err := h.accountService.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("ok"))
}
