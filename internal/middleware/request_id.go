package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smartfactory-assistant/pkg/log"
)

// RequestID reuses the caller's X-Request-ID or mints one, echoes it back and
// puts it on the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
