package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tprep/tprep-api/internal/domain"
	"github.com/tprep/tprep-api/internal/service/study"
	"github.com/tprep/tprep-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "session not found", err: study.ErrSessionNotFound, want: http.StatusNotFound},
		{name: "exam not found", err: store.ErrExamNotFound, want: http.StatusNotFound},
		{name: "card not found", err: store.ErrCardNotFound, want: http.StatusNotFound},
		{name: "unsupported strategy", err: domain.ErrUnsupportedStrategy, want: http.StatusBadRequest},
		{name: "question not in session", err: domain.ErrQuestionNotInSession, want: http.StatusBadRequest},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "exam has no cards", err: study.ErrExamHasNoCards, want: http.StatusUnprocessableEntity},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{
			name: "wrapped sentinel keeps its mapping",
			err:  fmt.Errorf("creating session: %w", study.ErrExamHasNoCards),
			want: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Session not found", GetSafeErrorMessage(study.ErrSessionNotFound))
	assert.Equal(t, "Exam has no cards", GetSafeErrorMessage(study.ErrExamHasNoCards))
	assert.Equal(t, "Unsupported session strategy",
		GetSafeErrorMessage(fmt.Errorf("%w: %q", domain.ErrUnsupportedStrategy, "bogus")))

	// Internal detail never leaks to the client
	assert.Equal(t, "An unexpected error occurred",
		GetSafeErrorMessage(errors.New("pq: connection refused host=10.0.0.1")))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}
