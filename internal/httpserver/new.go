package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/middleware"
	"smartfactory-assistant/internal/reasoning"
	"smartfactory-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Intent domain
	intentUC intent.UseCase

	// Reasoning domain, nil when the routes are not served
	reasoningUC reasoning.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	// RateLimitPerMinute throttles each actor on domain routes. 0 disables it.
	RateLimitPerMinute int

	IntentUseCase    intent.UseCase
	ReasoningUseCase reasoning.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          middleware.New(logger, cfg.RateLimitPerMinute),
		intentUC:    cfg.IntentUseCase,
		reasoningUC: cfg.ReasoningUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.intentUC == nil {
		return errors.New("intent use case is required")
	}
	return nil
}
