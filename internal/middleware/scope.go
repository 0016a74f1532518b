package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smartfactory-assistant/internal/model"
	"smartfactory-assistant/pkg/response"
)

// Scope reads the actor from gateway headers. Unknown roles are dropped so the
// actor only sees unrestricted actions.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID: strings.TrimSpace(c.GetHeader(HeaderUserID)),
			Role:   strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))),
		}
		if sc.Role != "" && !model.IsKnownRole(sc.Role) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.Scope: unknown role %q for user %q", sc.Role, sc.UserID)
			sc.Role = ""
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope returns the actor stored by Scope.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}

// RequireRole rejects actors whose role does not satisfy role.
func (m Middleware) RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := GetScope(c)
		if !model.Allowed(string(role), sc.Role) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RequireRole: user %q with role %q denied", sc.UserID, sc.Role)
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}
