package main

import (
	"database/sql"
	"log/slog"
	"math/rand"

	"github.com/tprep/tprep-api/internal/config"
	"github.com/tprep/tprep-api/internal/domain/scheduler"
	"github.com/tprep/tprep-api/internal/platform/postgres"
	"github.com/tprep/tprep-api/internal/service/study"
	"github.com/tprep/tprep-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	examStore  store.ExamStore
	cardStore  store.CardStore
	statsStore store.MistakeStatsStore

	// Services
	sessionRegistry *study.SessionRegistry
	studyService    study.StudyService
}

// newApplication wires the stores and services from their concrete
// implementations. The sampler is seeded from configuration so random
// session selection can be made reproducible for debugging.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	examStore := postgres.NewPostgresExamStore(db, logger)
	cardStore := postgres.NewPostgresCardStore(db, logger)
	statsStore := postgres.NewPostgresMistakeStatsStore(db, logger)

	var src rand.Source
	if cfg.Session.RandomSeed != 0 {
		src = rand.NewSource(cfg.Session.RandomSeed)
	}
	sampler := scheduler.NewSampler(src)

	registry := study.NewSessionRegistry(cfg.Session.TTL, logger)
	studyService := study.NewStudyService(cardStore, statsStore, registry, sampler, logger)

	return &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		examStore:       examStore,
		cardStore:       cardStore,
		statsStore:      statsStore,
		sessionRegistry: registry,
		studyService:    studyService,
	}
}

// cleanup releases resources held by the application.
// It is called during graceful shutdown after the HTTP server has stopped.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
