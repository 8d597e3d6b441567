package main

//
//  @title           etfpulse API
//  @version         1.0
//  @description     Read-only ETF catalog, daily closes and risk statistics (annualized volatility, max drawdown).
//  @termsOfService  https://github.com/guttosm/etfpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/etfpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        etfs
//  @tag.description ETF catalog
//
//  @tag.name        prices
//  @tag.description Daily closing prices
//
//  @tag.name        stats
//  @tag.description Risk statistics over a price window
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/etfpulse/config"
	etfdb "github.com/guttosm/etfpulse/db"
	_ "github.com/guttosm/etfpulse/docs" // swagger docs
	"github.com/guttosm/etfpulse/internal/app"
	"github.com/guttosm/etfpulse/internal/ingestion"
	"github.com/guttosm/etfpulse/internal/logger"
	"github.com/guttosm/etfpulse/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runIngest loads the JSON data set at dir into PostgreSQL.
func runIngest(ctx context.Context, dir string, parallel int, force, migrate bool) error {
	// Direct DB connection for ingestion
	db, err := app.InitPostgres(config.AppConfig)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if migrate {
		if err := etfdb.Migrate(db); err != nil {
			return err
		}
	}

	return ingestion.ProcessDirectory(ctx, dir, storage.NewPostgresRepository(db), parallel, force)
}

// main is the entry point of the etfpulse application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API over the configured backend (STORE_BACKEND).
//   - ingest: Loads etfs.json and prices/<SYMBOL>.json from --dir into PostgreSQL.
//
// Flags:
//   - --mode:     Execution mode ("api" or "ingest"). Default: "api".
//   - --dir:      Data set directory. Defaults to DATA_DIR.
//   - --port:     Port for the API server. Defaults to SERVER_PORT.
//   - --parallel: Price files processed concurrently during ingestion (0=auto, max 8).
//   - --force:    Reload symbols that were already ingested.
//   - --migrate:  Apply database migrations before ingesting. Default: true.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or ingest")
	dir := flag.String("dir", config.AppConfig.Data.Dir, "Data set directory (etfs.json + prices/)")
	parallel := flag.Int("parallel", 0, "How many price files to load concurrently (0=auto up to CPU, max 8)")
	force := flag.Bool("force", false, "Reload symbols even if already ingested (deletes their stored prices)")
	migrate := flag.Bool("migrate", true, "Apply database migrations before ingesting")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "ingest":
		logger.L().Info().Str("dir", *dir).Msg("running ingestion")
		if err := runIngest(ctx, *dir, *parallel, *force, *migrate); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Str("backend", config.AppConfig.Data.Backend).Msg("starting API server")

		config.AppConfig.Data.Dir = *dir

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
