// Package study implements the session-selection and answer-tracking
// subsystem: building study sessions from an exam's card catalog with one of
// the selection strategies, holding live sessions in a process-wide
// registry, and feeding wrong answers back into the per-user mistake
// counters that the smart strategy consults.
package study

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tprep/tprep-api/internal/domain"
)

// StudyService provides the session operations exposed to the request layer.
type StudyService interface {
	// CreateSession builds a new study session for the given user and exam
	// using the requested strategy, registers it and returns it.
	//
	// The limit parameter is an optional size hint, meaningful only for the
	// random strategy: nil selects the whole deck (shuffled), zero yields
	// an empty session, and values above the card count are clamped.
	//
	// Returns ErrExamHasNoCards when the exam's catalog is empty and
	// domain.ErrUnsupportedStrategy for an unknown strategy value. Smart
	// sessions for users without any recorded mistakes come out empty
	// rather than failing.
	CreateSession(
		ctx context.Context,
		userID uuid.UUID,
		examID uuid.UUID,
		strategy domain.Strategy,
		limit *int,
	) (*domain.ExamSession, error)

	// GetSession looks up a live session by its identifier.
	// Returns ErrSessionNotFound for an identifier that was never issued
	// or whose session has been closed or evicted.
	GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.ExamSession, error)

	// SubmitAnswer records a right/wrong answer for a card of a live
	// session. A wrong answer additionally increments the user's mistake
	// counter for that card, on every wrong submission including repeated
	// re-answers of the same card. Overwriting a previous answer is allowed.
	//
	// Returns ErrSessionNotFound for an unknown session and
	// domain.ErrQuestionNotInSession when the card is not part of the
	// session's question list. Statistics store failures propagate
	// unchanged; the recorded answer is not rolled back.
	SubmitAnswer(ctx context.Context, sessionID, cardID uuid.UUID, isCorrect bool) error

	// CloseSession removes a session from the registry. Subsequent lookups
	// fail with ErrSessionNotFound. Mistake counters already written stay
	// in place.
	CloseSession(ctx context.Context, sessionID uuid.UUID) error
}

// Common error types for StudyService
var (
	// ErrExamHasNoCards indicates that the exam has no cards to schedule.
	ErrExamHasNoCards = errors.New("exam has no cards")

	// ErrSessionNotFound indicates that no live session exists for the identifier.
	ErrSessionNotFound = errors.New("session not found")
)

// ServiceError wraps errors from the study service with additional context.
// This allows consumers to differentiate between different types of service
// errors using errors.Is/errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_session")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewCreateSessionError returns a new ServiceError for the create_session operation.
func NewCreateSessionError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "create_session",
		Message:   message,
		Err:       err,
	}
}

// NewSubmitAnswerError returns a new ServiceError for the submit_answer operation.
func NewSubmitAnswerError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "submit_answer",
		Message:   message,
		Err:       err,
	}
}
