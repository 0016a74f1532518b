package httpserver

import (
	"github.com/gin-gonic/gin"

	"smartfactory-assistant/pkg/response"
)

// Health response constants.
const (
	HealthMessage = "Smart factory assistant is running"
	HealthVersion = "1.0.0"
	ServiceName   = "smartfactory-assistant"
)

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":  state,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports readiness along with the resolver cache sizes.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.status("ready")
	body["cache"] = srv.intentUC.CacheStats(c.Request.Context())
	body["reasoning_routes"] = srv.reasoningUC != nil
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
