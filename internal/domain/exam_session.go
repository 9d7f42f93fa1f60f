package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ExamSession is an ephemeral, in-memory record of a requested quiz attempt:
// a question list fixed at creation plus an accumulating answer map.
//
// Sessions are created by the study service and owned by the session
// registry; no other component holds a reference after creation. The question
// list never changes once the session exists, and every answer key is
// guaranteed to be a member of the question list. The answer map is guarded
// by the session's own mutex, so a single session can be answered and read
// from concurrent requests safely.
type ExamSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ExamID    uuid.UUID
	CreatedAt time.Time

	mu        sync.RWMutex
	questions []uuid.UUID
	answers   map[uuid.UUID]bool
}

// NewExamSession creates a session for the given user and exam with the
// resolved question list. It generates a fresh, globally unique session ID
// and starts with an empty answer map. The questions slice is copied, so the
// caller cannot mutate the session's question list afterward.
func NewExamSession(userID, examID uuid.UUID, questions []uuid.UUID) *ExamSession {
	qs := make([]uuid.UUID, len(questions))
	copy(qs, questions)

	return &ExamSession{
		ID:        uuid.New(),
		UserID:    userID,
		ExamID:    examID,
		CreatedAt: time.Now().UTC(),
		questions: qs,
		answers:   make(map[uuid.UUID]bool),
	}
}

// Questions returns the session's question list in selection order.
// The returned slice is a copy; the underlying list is immutable.
func (s *ExamSession) Questions() []uuid.UUID {
	qs := make([]uuid.UUID, len(s.questions))
	copy(qs, s.questions)
	return qs
}

// Len returns the number of questions in the session.
func (s *ExamSession) Len() int {
	return len(s.questions)
}

// HasQuestion reports whether the given card is part of the session's
// question list.
func (s *ExamSession) HasQuestion(cardID uuid.UUID) bool {
	for _, q := range s.questions {
		if q == cardID {
			return true
		}
	}
	return false
}

// RecordAnswer records or overwrites the answer for the given card.
// Returns ErrQuestionNotInSession if the card is not part of the session's
// question list. Re-answering a card is allowed indefinitely; there is no
// completed state.
func (s *ExamSession) RecordAnswer(cardID uuid.UUID, isCorrect bool) error {
	if !s.HasQuestion(cardID) {
		return fmt.Errorf("%w: card %s", ErrQuestionNotInSession, cardID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[cardID] = isCorrect
	return nil
}

// Answers returns a copy of the session's answer map.
// Every key is a member of the question list.
func (s *ExamSession) Answers() map[uuid.UUID]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answers := make(map[uuid.UUID]bool, len(s.answers))
	for cardID, isCorrect := range s.answers {
		answers[cardID] = isCorrect
	}
	return answers
}

// Answer returns the recorded answer for the given card and whether one has
// been recorded.
func (s *ExamSession) Answer(cardID uuid.UUID) (isCorrect, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	isCorrect, ok = s.answers[cardID]
	return isCorrect, ok
}
