package http

import (
	"github.com/gin-gonic/gin"

	"smartfactory-assistant/internal/middleware"
	"smartfactory-assistant/internal/model"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route needs the actor scope; cache reset is admin only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Scope(), mw.RateLimit())

	rg.POST("/resolve", h.Resolve)
	rg.POST("/resolve/hybrid", h.ResolveHybrid)
	rg.POST("/extract-payload", h.ExtractPayload)
	rg.GET("/actions", h.ListActions)
	rg.GET("/suggest", h.Suggest)

	cache := rg.Group("/cache")
	{
		cache.GET("/stats", h.CacheStats)
		cache.DELETE("", mw.RequireRole(model.RoleAdmin), h.ClearCache)
	}
}
