package middleware

import (
	"net/http"
	"strings"

	"libraryapi/internal/config"
	"libraryapi/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	claimsKey   = "claims"
	userIDKey   = "userID"
	usernameKey = "username"
)

// deniedValue is the sentinel claim value that revokes an otherwise
// role-granted permission.
const deniedValue = "false"

// Authenticate validates the bearer token (signature, issuer, audience,
// lifetime) and stores its claims in the request context. Authorization
// failures past this point are 403; here a missing or invalid token is 401.
func Authenticate(settings config.JWTSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Message("Authorization is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Message("Invalid authorization format. Expected 'Bearer <token>'"))
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return settings.Secret, nil
		}, jwt.WithIssuer(settings.Issuer), jwt.WithAudience(settings.Audience), jwt.WithExpirationRequired())

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Message("Invalid token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Message("Invalid token claims"))
			return
		}

		c.Set(claimsKey, claims)
		if sub, ok := claims["sub"].(string); ok {
			c.Set(userIDKey, sub)
		}
		if name, ok := claims["name"].(string); ok {
			c.Set(usernameKey, name)
		}

		c.Next()
	}
}

// GetClaims returns the token claims stored by Authenticate.
func GetClaims(c *gin.Context) (jwt.MapClaims, bool) {
	raw, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := raw.(jwt.MapClaims)
	return claims, ok
}

// GetUsername returns the caller's username stored by Authenticate.
func GetUsername(c *gin.Context) (string, bool) {
	raw, exists := c.Get(usernameKey)
	if !exists {
		return "", false
	}
	name, ok := raw.(string)
	return name, ok
}

// RequireRoles is the coarse authorization gate: the caller must hold at
// least one of the allowed roles. It never inspects override claims; that is
// DenyClaims' job, so the grant and the revoke stay separately auditable.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Message("Authorization is missing"))
			return
		}

		held, ok := claims["roles"].([]interface{})
		if !ok {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		for _, allowed := range allowedRoles {
			for _, role := range held {
				if name, ok := role.(string); ok && name == allowed {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatus(http.StatusForbidden)
	}
}

// DenyClaims is the fine-grained override: if the caller carries any of the
// listed claim types with the sentinel value "false", access is denied even
// though the role gate passed. The revoke always wins over the grant.
func DenyClaims(claimTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Message("Authorization is missing"))
			return
		}

		for _, claimType := range claimTypes {
			if claimDenied(claims[claimType]) {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}

		c.Next()
	}
}

// claimDenied reports whether a claim value carries the revoking "false".
// Same-type claims arrive as an array; any "false" among the values revokes.
func claimDenied(value interface{}) bool {
	switch v := value.(type) {
	case string:
		return v == deniedValue
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s == deniedValue {
				return true
			}
		}
	case []string:
		for _, s := range v {
			if s == deniedValue {
				return true
			}
		}
	}
	return false
}
