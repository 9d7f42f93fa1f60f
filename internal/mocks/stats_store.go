package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/tprep/tprep-api/internal/domain"
	"github.com/tprep/tprep-api/internal/store"
)

// IncrementCall captures the arguments of one IncrementMistake invocation.
type IncrementCall struct {
	UserID uuid.UUID
	CardID uuid.UUID
	ExamID uuid.UUID
}

// MockMistakeStatsStore implements store.MistakeStatsStore for testing
type MockMistakeStatsStore struct {
	// Custom behavior functions
	IncrementMistakeFn func(ctx context.Context, userID, cardID, examID uuid.UUID) error
	TopMistakesFn      func(ctx context.Context, userID, examID uuid.UUID, limit int) ([]*domain.MistakeStats, error)
	GetFn              func(ctx context.Context, userID, cardID, examID uuid.UUID) (*domain.MistakeStats, error)

	// Default response values
	Stats    []*domain.MistakeStats
	StatsRow *domain.MistakeStats
	Err      error

	// Call tracking for verification
	IncrementCalls struct {
		mu    sync.Mutex
		Count int
		Calls []IncrementCall
	}

	TopMistakesCalls struct {
		mu     sync.Mutex
		Count  int
		Limits []int
	}
}

// Ensure MockMistakeStatsStore implements store.MistakeStatsStore
var _ store.MistakeStatsStore = (*MockMistakeStatsStore)(nil)

// IncrementMistake implements the store.MistakeStatsStore interface
func (m *MockMistakeStatsStore) IncrementMistake(ctx context.Context, userID, cardID, examID uuid.UUID) error {
	m.IncrementCalls.mu.Lock()
	m.IncrementCalls.Count++
	m.IncrementCalls.Calls = append(m.IncrementCalls.Calls, IncrementCall{
		UserID: userID,
		CardID: cardID,
		ExamID: examID,
	})
	m.IncrementCalls.mu.Unlock()

	if m.IncrementMistakeFn != nil {
		return m.IncrementMistakeFn(ctx, userID, cardID, examID)
	}
	return m.Err
}

// TopMistakes implements the store.MistakeStatsStore interface
func (m *MockMistakeStatsStore) TopMistakes(ctx context.Context, userID, examID uuid.UUID, limit int) ([]*domain.MistakeStats, error) {
	m.TopMistakesCalls.mu.Lock()
	m.TopMistakesCalls.Count++
	m.TopMistakesCalls.Limits = append(m.TopMistakesCalls.Limits, limit)
	m.TopMistakesCalls.mu.Unlock()

	if m.TopMistakesFn != nil {
		return m.TopMistakesFn(ctx, userID, examID, limit)
	}
	return m.Stats, m.Err
}

// Get implements the store.MistakeStatsStore interface
func (m *MockMistakeStatsStore) Get(ctx context.Context, userID, cardID, examID uuid.UUID) (*domain.MistakeStats, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID, cardID, examID)
	}
	return m.StatsRow, m.Err
}

// WithTx implements the store.MistakeStatsStore interface; the mock ignores
// the transaction and returns itself.
func (m *MockMistakeStatsStore) WithTx(tx *sql.Tx) store.MistakeStatsStore {
	return m
}
