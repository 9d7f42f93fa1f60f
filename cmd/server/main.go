// Package main implements the entry point for the tprep API server,
// which schedules spaced study sessions over exam card catalogs and
// tracks per-user mistake statistics.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/tprep/tprep-api/internal/config"
	"github.com/tprep/tprep-api/internal/platform/logger"
)

// main loads configuration, wires the application dependencies, and runs
// the HTTP server until it receives a shutdown signal.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run performs all initialization and blocks serving HTTP traffic.
// Keeping the logic out of main makes the failure path testable.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"session_ttl", cfg.Session.TTL)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app := newApplication(cfg, appLogger, db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The sweeper stops when the server context is canceled during shutdown.
	app.sessionRegistry.StartSweeper(ctx, cfg.Session.SweepInterval)

	return app.startHTTPServer(ctx, app.setupRouter())
}
