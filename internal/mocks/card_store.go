package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/tprep/tprep-api/internal/domain"
	"github.com/tprep/tprep-api/internal/store"
)

// MockCardStore implements store.CardStore for testing
type MockCardStore struct {
	// Custom behavior functions
	CreateMultipleFn func(ctx context.Context, cards []*domain.Card) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	GetByExamFn      func(ctx context.Context, examID uuid.UUID) ([]*domain.Card, error)
	DeleteFn         func(ctx context.Context, id uuid.UUID) error

	// Default response values
	Cards []*domain.Card
	Card  *domain.Card
	Err   error

	// Call tracking for verification
	GetByExamCalls struct {
		mu      sync.Mutex
		Count   int
		ExamIDs []uuid.UUID
	}
}

// Ensure MockCardStore implements store.CardStore
var _ store.CardStore = (*MockCardStore)(nil)

// CreateMultiple implements the store.CardStore interface
func (m *MockCardStore) CreateMultiple(ctx context.Context, cards []*domain.Card) error {
	if m.CreateMultipleFn != nil {
		return m.CreateMultipleFn(ctx, cards)
	}
	return m.Err
}

// GetByID implements the store.CardStore interface
func (m *MockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Card, m.Err
}

// GetByExam implements the store.CardStore interface
func (m *MockCardStore) GetByExam(ctx context.Context, examID uuid.UUID) ([]*domain.Card, error) {
	m.GetByExamCalls.mu.Lock()
	m.GetByExamCalls.Count++
	m.GetByExamCalls.ExamIDs = append(m.GetByExamCalls.ExamIDs, examID)
	m.GetByExamCalls.mu.Unlock()

	if m.GetByExamFn != nil {
		return m.GetByExamFn(ctx, examID)
	}
	return m.Cards, m.Err
}

// Delete implements the store.CardStore interface
func (m *MockCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// WithTx implements the store.CardStore interface; the mock ignores the
// transaction and returns itself.
func (m *MockCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return m
}
