package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smartfactory-assistant/config"
	_ "smartfactory-assistant/docs" // Swagger docs
	"smartfactory-assistant/internal/app"
	"smartfactory-assistant/internal/httpserver"
	"smartfactory-assistant/pkg/log"
)

// @title       Smart Factory Assistant API
// @description Resolves Vietnamese intranet chat commands to catalogue actions, with an optional semantic fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Factory Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Resolver: a broken catalogue stops the process before serving
	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to build resolver: %v", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		RateLimitPerMinute: cfg.RateLimit.PerMinute,
		IntentUseCase:      a.Intent,
		ReasoningUseCase:   a.Reasoning,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
