package http

import (
	"github.com/gin-gonic/gin"

	"smartfactory-assistant/internal/middleware"
)

// RegisterRoutes mounts the reasoning routes under rg (normally /api/v1/chat).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Scope(), mw.RateLimit())

	rg.POST("/semantic-match", h.SemanticMatch)
	rg.POST("/extract-content", h.ExtractContent)
}
