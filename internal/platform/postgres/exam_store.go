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

// PostgresExamStore implements the store.ExamStore interface
// using a PostgreSQL database as the storage backend.
type PostgresExamStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresExamStore creates a new PostgreSQL implementation of the ExamStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresExamStore(db store.DBTX, logger *slog.Logger) *PostgresExamStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresExamStore{
		db:     db,
		logger: logger.With(slog.String("component", "exam_store")),
	}
}

// Ensure PostgresExamStore implements store.ExamStore interface
var _ store.ExamStore = (*PostgresExamStore)(nil)

// Create implements store.ExamStore.Create
// It saves a new exam to the database, handling domain validation.
func (s *PostgresExamStore) Create(ctx context.Context, exam *domain.Exam) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := exam.Validate(); err != nil {
		log.Warn("exam validation failed during create",
			slog.String("error", err.Error()),
			slog.String("exam_id", exam.ID.String()))
		return err
	}

	query := `
		INSERT INTO exams (id, title, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		exam.ID,
		exam.Title,
		exam.CreatorID,
		exam.CreatedAt,
		exam.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create exam",
			slog.String("error", err.Error()),
			slog.String("exam_id", exam.ID.String()))
		return MapError(err)
	}

	log.Debug("exam created",
		slog.String("exam_id", exam.ID.String()),
		slog.String("creator_id", exam.CreatorID.String()))
	return nil
}

// GetByID implements store.ExamStore.GetByID
// Returns store.ErrExamNotFound if the exam does not exist.
func (s *PostgresExamStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exam, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, creator_id, created_at, updated_at
		FROM exams
		WHERE id = $1
	`
	var exam domain.Exam
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&exam.ID,
		&exam.Title,
		&exam.CreatorID,
		&exam.CreatedAt,
		&exam.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("exam not found", slog.String("exam_id", id.String()))
			return nil, store.ErrExamNotFound
		}
		log.Error("failed to get exam",
			slog.String("error", err.Error()),
			slog.String("exam_id", id.String()))
		return nil, MapError(err)
	}

	return &exam, nil
}

// Delete implements store.ExamStore.Delete
// Returns store.ErrExamNotFound if the exam does not exist.
func (s *PostgresExamStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete exam",
			slog.String("error", err.Error()),
			slog.String("exam_id", id.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrExamNotFound
	}

	log.Debug("exam deleted", slog.String("exam_id", id.String()))
	return nil
}

// WithTx implements store.ExamStore.WithTx
// It returns a new ExamStore that runs all operations on the given transaction.
func (s *PostgresExamStore) WithTx(tx *sql.Tx) store.ExamStore {
	return &PostgresExamStore{
		db:     tx,
		logger: s.logger,
	}
}
