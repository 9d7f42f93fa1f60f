package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tprep/tprep-api/internal/domain"
	"github.com/tprep/tprep-api/internal/platform/logger"
	"github.com/tprep/tprep-api/internal/store"
)

// PostgresMistakeStatsStore implements the store.MistakeStatsStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMistakeStatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMistakeStatsStore creates a new PostgreSQL implementation of the MistakeStatsStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresMistakeStatsStore(db store.DBTX, logger *slog.Logger) *PostgresMistakeStatsStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMistakeStatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "mistake_stats_store")),
	}
}

// Ensure PostgresMistakeStatsStore implements store.MistakeStatsStore interface
var _ store.MistakeStatsStore = (*PostgresMistakeStatsStore)(nil)

// IncrementMistake implements store.MistakeStatsStore.IncrementMistake
// It upserts the counter row for (user, card, exam) and adds exactly one
// mistake. The upsert makes the increment atomic under concurrent callers;
// there is no read-modify-write window.
func (s *PostgresMistakeStatsStore) IncrementMistake(ctx context.Context, userID, cardID, examID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO mistake_stats (user_id, card_id, exam_id, mistakes, created_at, updated_at)
		VALUES ($1, $2, $3, 1, now(), now())
		ON CONFLICT (user_id, card_id, exam_id)
		DO UPDATE SET mistakes = mistake_stats.mistakes + 1, updated_at = now()
	`
	_, err := s.db.ExecContext(ctx, query, userID, cardID, examID)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("card or exam not found during mistake increment",
				slog.String("user_id", userID.String()),
				slog.String("card_id", cardID.String()),
				slog.String("exam_id", examID.String()))
			return fmt.Errorf("%w: card %s or exam %s not found",
				store.ErrInvalidEntity, cardID, examID)
		}
		log.Error("failed to increment mistake counter",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("card_id", cardID.String()))
		return MapError(err)
	}

	log.Debug("mistake counter incremented",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
		slog.String("exam_id", examID.String()))
	return nil
}

// TopMistakes implements store.MistakeStatsStore.TopMistakes
// It returns up to limit counters for the user and exam, most mistakes
// first. Cards without a counter row never appear in the result.
func (s *PostgresMistakeStatsStore) TopMistakes(ctx context.Context, userID, examID uuid.UUID, limit int) ([]*domain.MistakeStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return []*domain.MistakeStats{}, nil
	}

	query := `
		SELECT user_id, card_id, exam_id, mistakes, created_at, updated_at
		FROM mistake_stats
		WHERE user_id = $1 AND exam_id = $2
		ORDER BY mistakes DESC
		LIMIT $3
	`
	rows, err := s.db.QueryContext(ctx, query, userID, examID, limit)
	if err != nil {
		log.Error("failed to query top mistakes",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("exam_id", examID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	stats := make([]*domain.MistakeStats, 0, limit)
	for rows.Next() {
		var st domain.MistakeStats
		if err := rows.Scan(
			&st.UserID,
			&st.CardID,
			&st.ExamID,
			&st.Mistakes,
			&st.CreatedAt,
			&st.UpdatedAt,
		); err != nil {
			log.Error("failed to scan mistake stats row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		stats = append(stats, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return stats, nil
}

// Get implements store.MistakeStatsStore.Get
// Returns store.ErrMistakeStatsNotFound if no mistakes are recorded for the
// (user, card, exam) combination.
func (s *PostgresMistakeStatsStore) Get(ctx context.Context, userID, cardID, examID uuid.UUID) (*domain.MistakeStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT user_id, card_id, exam_id, mistakes, created_at, updated_at
		FROM mistake_stats
		WHERE user_id = $1 AND card_id = $2 AND exam_id = $3
	`
	var st domain.MistakeStats
	err := s.db.QueryRowContext(ctx, query, userID, cardID, examID).Scan(
		&st.UserID,
		&st.CardID,
		&st.ExamID,
		&st.Mistakes,
		&st.CreatedAt,
		&st.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrMistakeStatsNotFound
		}
		log.Error("failed to get mistake stats",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("card_id", cardID.String()))
		return nil, MapError(err)
	}

	return &st, nil
}

// WithTx implements store.MistakeStatsStore.WithTx
// It returns a new MistakeStatsStore that runs all operations on the given transaction.
func (s *PostgresMistakeStatsStore) WithTx(tx *sql.Tx) store.MistakeStatsStore {
	return &PostgresMistakeStatsStore{
		db:     tx,
		logger: s.logger,
	}
}
