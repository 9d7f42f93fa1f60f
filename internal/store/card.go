package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/tprep/tprep-api/internal/domain"
)

// CardStore defines the interface for card catalog persistence.
type CardStore interface {
	// CreateMultiple saves multiple cards to the store.
	// This method MUST be run within a transaction for atomicity: use
	// WithTx together with store.RunInTransaction so a failure partway
	// through a bulk import never leaves a partial catalog behind.
	//
	// All cards must be valid according to domain validation rules.
	// Returns validation errors if any card data is invalid.
	CreateMultiple(ctx context.Context, cards []*domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// GetByExam retrieves all cards belonging to an exam in catalog order,
	// i.e. ascending by ordinal. Returns an empty slice when the exam has
	// no cards; an unknown exam ID is indistinguishable from an empty exam
	// at this level.
	GetByExam(ctx context.Context, examID uuid.UUID) ([]*domain.Card, error)

	// Delete removes a card from the store by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	// Associated mistake stats rows are removed by the database through
	// ON DELETE CASCADE foreign keys.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new CardStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) CardStore
}
