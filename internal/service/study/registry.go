package study

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tprep/tprep-api/internal/domain"
)

// SessionRegistry is the process-wide store of live study sessions, keyed by
// session identifier. It is created once at startup and shared by all
// requests, so every operation is guarded by a read-write mutex.
//
// Entries leave the registry in exactly two ways: an explicit Remove (the
// close operation) or eviction by the TTL sweeper. A zero TTL disables the
// sweeper and gives sessions unbounded lifetime.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.ExamSession
	ttl      time.Duration
	logger   *slog.Logger
}

// NewSessionRegistry creates an empty registry. A ttl of zero disables
// expiry. If logger is nil, a default logger will be used.
func NewSessionRegistry(ttl time.Duration, logger *slog.Logger) *SessionRegistry {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionRegistry{
		sessions: make(map[uuid.UUID]*domain.ExamSession),
		ttl:      ttl,
		logger:   logger.With(slog.String("component", "session_registry")),
	}
}

// Put inserts a session under its identifier, replacing any previous entry
// with the same identifier. Session identifiers are freshly generated UUIDs,
// so replacement does not occur in practice.
func (r *SessionRegistry) Put(session *domain.ExamSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
}

// Get returns the live session for the identifier.
// Returns ErrSessionNotFound if no such session exists.
func (r *SessionRegistry) Get(id uuid.UUID) (*domain.ExamSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Remove deletes the session for the identifier.
// Returns ErrSessionNotFound if no such session exists.
func (r *SessionRegistry) Remove(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// StartSweeper launches a background goroutine that periodically evicts
// sessions older than the registry TTL. It returns immediately; the sweeper
// stops when the context is canceled. With a zero TTL or non-positive
// interval no goroutine is started.
func (r *SessionRegistry) StartSweeper(ctx context.Context, interval time.Duration) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if evicted := r.sweep(now); evicted > 0 {
					r.logger.Info("evicted expired sessions",
						slog.Int("count", evicted),
						slog.Int("remaining", r.Len()))
				}
			}
		}
	}()
}

// sweep removes all sessions created more than the TTL before now and
// returns how many were evicted.
func (r *SessionRegistry) sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, session := range r.sessions {
		if now.Sub(session.CreatedAt) > r.ttl {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}
