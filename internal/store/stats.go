package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/tprep/tprep-api/internal/domain"
)

// MistakeStatsStore defines the interface for mistake counter persistence.
type MistakeStatsStore interface {
	// IncrementMistake atomically increments the mistake counter for the
	// given (user, card, exam) combination, creating the row with a count
	// of 1 if it does not exist yet. Every call increments by exactly one;
	// callers that re-submit a wrong answer for the same card get another
	// increment each time.
	IncrementMistake(ctx context.Context, userID, cardID, examID uuid.UUID) error

	// TopMistakes retrieves up to limit mistake counters for the given user
	// and exam, ordered by descending mistake count. Cards the user has
	// never answered incorrectly have no row and therefore never appear.
	// A limit of zero or less yields an empty slice.
	TopMistakes(ctx context.Context, userID, examID uuid.UUID, limit int) ([]*domain.MistakeStats, error)

	// Get retrieves the mistake counter for the given (user, card, exam)
	// combination. Returns ErrMistakeStatsNotFound if no mistakes have been
	// recorded for it.
	Get(ctx context.Context, userID, cardID, examID uuid.UUID) (*domain.MistakeStats, error)

	// WithTx returns a new MistakeStatsStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) MistakeStatsStore
}
