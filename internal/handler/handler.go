package handler

import (
	"errors"
	"net/http"
	"strconv"

	"libraryapi/internal/service"
	"libraryapi/pkg/response"

	"github.com/gin-gonic/gin"
)

// writeError maps service failures onto the wire: missing user record → 404,
// domain errors → 400 {message}, everything else → 500 problem detail with
// the raw error message.
func writeError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, response.Message(err.Error()))
		return
	}
	if service.IsDomainError(err) {
		c.JSON(http.StatusBadRequest, response.Message(err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, response.Problem(http.StatusInternalServerError, err.Error()))
}

// parseID parses a numeric path param, writing a 400 if it is malformed.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid "+name))
		return 0, false
	}
	return uint(parsed), true
}

// optQuery returns a pointer to the query value, or nil when absent. Absent
// criteria impose no constraint on specification lookups.
func optQuery(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok && v != "" {
		return &v
	}
	return nil
}
