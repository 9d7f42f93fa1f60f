package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tprep/tprep-api/internal/config"
	"github.com/tprep/tprep-api/internal/mocks"
	"github.com/tprep/tprep-api/internal/service/study"
)

// newTestApplication builds an application with a mock study service and no
// database, enough to exercise routing and middleware.
func newTestApplication() *application {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		},
		logger:          logger,
		sessionRegistry: study.NewSessionRegistry(0, logger),
		studyService:    &mocks.MockStudyService{Err: study.ErrSessionNotFound},
	}
}

func TestRouterHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestRouterSessionRoutesRegistered(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()

	// Each route reaches the handler; the mock reports the session missing,
	// which proves the request was routed rather than 404ed by the mux.
	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/api/sessions", `{"bad":`, http.StatusBadRequest},
		{http.MethodGet, "/api/sessions/00000000-0000-0000-0000-000000000001", "", http.StatusNotFound},
		{http.MethodPost, "/api/sessions/00000000-0000-0000-0000-000000000001/answers", `{"bad":`, http.StatusBadRequest},
		{http.MethodDelete, "/api/sessions/00000000-0000-0000-0000-000000000001", "", http.StatusNotFound},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(tc.method, tc.path, bytes.NewReader([]byte(tc.body)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, tc.want, rr.Code, "%s %s", tc.method, tc.path)
	}

	// An unregistered path falls through to the mux's own 404
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/exams", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
