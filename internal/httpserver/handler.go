package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	intentHTTP "smartfactory-assistant/internal/intent/delivery/http"
	"smartfactory-assistant/internal/model"
	reasoningHTTP "smartfactory-assistant/internal/reasoning/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.RequestID())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// Intent: /api/v1/intent/*
	h := intentHTTP.New(srv.l, srv.intentUC)
	intentHTTP.RegisterRoutes(api.Group("/intent"), h, srv.mw)
	srv.l.Infof(ctx, "Intent domain registered")

	// Reasoning: /api/v1/chat/*
	if srv.reasoningUC != nil {
		rh := reasoningHTTP.New(srv.l, srv.reasoningUC)
		reasoningHTTP.RegisterRoutes(api.Group("/chat"), rh, srv.mw)
		srv.l.Infof(ctx, "Reasoning routes registered at /api/v1/chat")
	} else {
		srv.l.Infof(ctx, "Reasoning routes disabled, skipping /api/v1/chat")
	}

	return nil
}
