package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/etfpulse/config"
	"github.com/guttosm/etfpulse/internal/api"
	"github.com/guttosm/etfpulse/internal/logger"
	"github.com/guttosm/etfpulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Opens the storage backend selected by STORE_BACKEND (JSON files or PostgreSQL).
//   - Initializes the catalog service with the configured statistics options.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	b, err := openBackend(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize %s backend: %w", cfg.Data.Backend, err)
	}
	logger.Component("app").Info().
		Str("backend", b.name).
		Str("data_dir", cfg.Data.Dir).
		Int("trading_days", cfg.Stats.TradingDays).
		Msg("storage backend ready")

	// Initialize service layer (window rules and statistics)
	svc := service.NewCatalogService(b.etfs, b.prices, service.Options{
		TradingDays:  cfg.Stats.TradingDays,
		MaxRangeDays: cfg.Stats.MaxRangeDays,
	})

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(b.probe)
	healthHandler.Register(router)

	return router, b.close, nil
}
