package main

import (
	"fmt"
	"log/slog"

	"openmeteo-url/internal/config"
	"openmeteo-url/internal/query"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router       *gin.Engine
	logger       *slog.Logger
	queryService query.Service
	cfg          *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	querySvc, err := query.NewQueryService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create query service: %w", err)
	}
	return NewAppWithService(cfg, logger, querySvc), nil
}

// NewAppWithService creates an application around an existing query service
func NewAppWithService(cfg *config.Config, logger *slog.Logger, querySvc query.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:       router,
		logger:       logger,
		queryService: querySvc,
		cfg:          cfg,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized")

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
