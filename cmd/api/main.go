// Command api is the Fantasy Syndicate league data API server.
//
// Usage:
//
//	syndicate-api
//	API_PORT=8080 syndicate-api

// @title Fantasy Syndicate League API
// @version 1.0.0
// @description League dashboard data API: rosters, salary cap ledgers, head-to-head analytics, trades, awards, and member sessions.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Fantasy Syndicate
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/fantasysyndicate/league-data/internal/api"
	"github.com/fantasysyndicate/league-data/internal/auth"
	"github.com/fantasysyndicate/league-data/internal/cache"
	"github.com/fantasysyndicate/league-data/internal/config"
	"github.com/fantasysyndicate/league-data/internal/db"
	"github.com/fantasysyndicate/league-data/internal/images"
	"github.com/fantasysyndicate/league-data/internal/listener"
	"github.com/fantasysyndicate/league-data/internal/maintenance"

	_ "github.com/fantasysyndicate/league-data/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Connect to database
	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Session service
	authSvc := auth.NewService(pool.Pool, cfg)

	// Object storage client (award art, player photos)
	imageSvc, err := images.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to configure object storage", "error", err)
		os.Exit(1)
	}
	if imageSvc == nil {
		logger.Info("Object storage disabled (no R2 settings)")
	}

	// Start LISTEN/NOTIFY consumer for cache invalidation on data changes
	go listener.Start(ctx, cfg.DatabaseURL, appCache, logger)

	// Start maintenance tickers (latency probe, pool/cache stats)
	go maintenance.Start(ctx, pool.Pool, appCache, maintenance.DefaultConfig(), logger)

	// Create router
	router := api.NewRouter(pool.Pool, appCache, cfg, authSvc, imageSvc)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Fantasy Syndicate League API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
