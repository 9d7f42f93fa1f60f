package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/tprep/tprep-api/internal/domain"
)

// ExamStore defines the interface for exam persistence.
type ExamStore interface {
	// Create saves a new exam to the store.
	// It handles domain validation internally.
	// Returns validation errors from the domain Exam if data is invalid.
	Create(ctx context.Context, exam *domain.Exam) error

	// GetByID retrieves an exam by its unique ID.
	// Returns ErrExamNotFound if the exam does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exam, error)

	// Delete removes an exam from the store by its ID.
	// Returns ErrExamNotFound if the exam does not exist.
	// Cards and mistake stats belonging to the exam are removed by the
	// database through ON DELETE CASCADE foreign keys.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new ExamStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ExamStore
}
