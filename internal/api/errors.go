package api

import (
	"errors"
	"net/http"

	"github.com/tprep/tprep-api/internal/domain"
	"github.com/tprep/tprep-api/internal/service/study"
	"github.com/tprep/tprep-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, study.ErrSessionNotFound),
		errors.Is(err, store.ErrExamNotFound),
		errors.Is(err, store.ErrCardNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrUnsupportedStrategy),
		errors.Is(err, domain.ErrQuestionNotInSession),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Structural precondition failures
	case errors.Is(err, study.ErrExamHasNoCards):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, study.ErrSessionNotFound):
		return "Session not found"

	case errors.Is(err, study.ErrExamHasNoCards):
		return "Exam has no cards"

	case errors.Is(err, domain.ErrUnsupportedStrategy):
		return "Unsupported session strategy"

	case errors.Is(err, domain.ErrQuestionNotInSession):
		return "Question is not part of this session"

	case errors.Is(err, store.ErrExamNotFound):
		return "Exam not found"

	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"

	default:
		return "An unexpected error occurred"
	}
}
