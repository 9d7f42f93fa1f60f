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

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// CreateMultiple implements store.CardStore.CreateMultiple
// It saves multiple cards to the database. Run it inside a transaction via
// WithTx and store.RunInTransaction so a bulk import is all-or-nothing.
func (s *PostgresCardStore) CreateMultiple(ctx context.Context, cards []*domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(cards) == 0 {
		return nil
	}

	for _, card := range cards {
		if err := card.Validate(); err != nil {
			log.Warn("card validation failed during bulk create",
				slog.String("error", err.Error()),
				slog.String("card_id", card.ID.String()))
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	query := `
		INSERT INTO cards (id, exam_id, question, answer, ordinal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, card := range cards {
		_, err := s.db.ExecContext(
			ctx,
			query,
			card.ID,
			card.ExamID,
			card.Question,
			card.Answer,
			card.Ordinal,
			card.CreatedAt,
			card.UpdatedAt,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				log.Warn("exam not found during card creation",
					slog.String("card_id", card.ID.String()),
					slog.String("exam_id", card.ExamID.String()))
				return fmt.Errorf("%w: exam with ID %s not found",
					store.ErrInvalidEntity, card.ExamID)
			}
			log.Error("failed to create card",
				slog.String("error", err.Error()),
				slog.String("card_id", card.ID.String()))
			return MapError(err)
		}
	}

	log.Debug("cards created",
		slog.Int("count", len(cards)),
		slog.String("exam_id", cards[0].ExamID.String()))
	return nil
}

// GetByID implements store.CardStore.GetByID
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, exam_id, question, answer, ordinal, created_at, updated_at
		FROM cards
		WHERE id = $1
	`
	var card domain.Card
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID,
		&card.ExamID,
		&card.Question,
		&card.Answer,
		&card.Ordinal,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("card not found", slog.String("card_id", id.String()))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return nil, MapError(err)
	}

	return &card, nil
}

// GetByExam implements store.CardStore.GetByExam
// It retrieves all cards of an exam in catalog order (ascending ordinal).
func (s *PostgresCardStore) GetByExam(ctx context.Context, examID uuid.UUID) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, exam_id, question, answer, ordinal, created_at, updated_at
		FROM cards
		WHERE exam_id = $1
		ORDER BY ordinal ASC
	`
	rows, err := s.db.QueryContext(ctx, query, examID)
	if err != nil {
		log.Error("failed to query cards by exam",
			slog.String("error", err.Error()),
			slog.String("exam_id", examID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	cards := make([]*domain.Card, 0)
	for rows.Next() {
		var card domain.Card
		if err := rows.Scan(
			&card.ID,
			&card.ExamID,
			&card.Question,
			&card.Answer,
			&card.Ordinal,
			&card.CreatedAt,
			&card.UpdatedAt,
		); err != nil {
			log.Error("failed to scan card row",
				slog.String("error", err.Error()),
				slog.String("exam_id", examID.String()))
			return nil, MapError(err)
		}
		cards = append(cards, &card)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("cards loaded for exam",
		slog.String("exam_id", examID.String()),
		slog.Int("count", len(cards)))
	return cards, nil
}

// Delete implements store.CardStore.Delete
// Returns store.ErrCardNotFound if the card does not exist. Mistake stats
// rows referencing the card are removed by ON DELETE CASCADE.
func (s *PostgresCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrCardNotFound
	}

	log.Debug("card deleted", slog.String("card_id", id.String()))
	return nil
}

// WithTx implements store.CardStore.WithTx
// It returns a new CardStore that runs all operations on the given transaction.
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{
		db:     tx,
		logger: s.logger,
	}
}
