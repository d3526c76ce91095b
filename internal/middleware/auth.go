// Package middleware provides the session gate and role gate applied to
// every protected route.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gavel/internal/auth"
	"gavel/internal/model"
)

// CookieName is the HTTP-only cookie carrying the session token.
const CookieName = "token"

// Context keys set by Authenticate.
const (
	ContextPrincipalID = "principalID"
	ContextRole        = "role"
)

const sessionExpiredMessage = "Session expired. Please login again."

// Authenticate validates the session cookie and stores the principal id and
// role in the request context. Missing, invalid, and expired tokens are
// indistinguishable to the caller: all abort with 401.
func Authenticate(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse(sessionExpiredMessage, ""))
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse(sessionExpiredMessage, ""))
			return
		}

		c.Set(ContextPrincipalID, claims.PrincipalID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the session role is one of the allowed
// roles. Must run after Authenticate, which guarantees 401 takes precedence
// over any role check.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := RoleFromContext(c)
		if ok {
			for _, allowed := range roles {
				if role == allowed {
					c.Next()
					return
				}
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, model.NewErrorResponse("Forbidden", ""))
	}
}

// PrincipalFromContext returns the authenticated principal id.
func PrincipalFromContext(c *gin.Context) (string, bool) {
	id, ok := c.Get(ContextPrincipalID)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}

// RoleFromContext returns the authenticated role.
func RoleFromContext(c *gin.Context) (model.Role, bool) {
	v, ok := c.Get(ContextRole)
	if !ok {
		return "", false
	}
	role, ok := v.(model.Role)
	return role, ok
}
