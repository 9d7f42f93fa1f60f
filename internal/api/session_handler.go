// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tprep/tprep-api/internal/api/shared"
	"github.com/tprep/tprep-api/internal/domain"
	"github.com/tprep/tprep-api/internal/platform/logger"
	"github.com/tprep/tprep-api/internal/service/study"
)

// SessionHandler handles study-session HTTP requests
type SessionHandler struct {
	studyService study.StudyService
	logger       *slog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(studyService study.StudyService, log *slog.Logger) *SessionHandler {
	if studyService == nil {
		panic("studyService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &SessionHandler{
		studyService: studyService,
		logger:       log.With(slog.String("component", "session_handler")),
	}
}

// CreateSession handles POST /sessions requests
// It builds a new study session with the requested strategy and returns it.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	// Validated as "oneof=full random smart" above; ParseStrategy keeps the
	// closed enumeration authoritative at the boundary.
	strategy, err := domain.ParseStrategy(req.Strategy)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	session, err := h.studyService.CreateSession(
		r.Context(),
		mustParseUUID(req.UserID),
		mustParseUUID(req.ExamID),
		strategy,
		req.Limit,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("session created",
		slog.String("session_id", session.ID.String()),
		slog.String("strategy", strategy.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, sessionToResponse(session))
}

// GetSession handles GET /sessions/{id} requests
// It returns the question list and recorded answers of a live session.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.pathSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.studyService.GetSession(r.Context(), sessionID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(session))
}

// SubmitAnswer handles POST /sessions/{id}/answers requests
// It records a right/wrong answer for a card of the session; wrong answers
// feed the user's mistake counter for that card.
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	sessionID, ok := h.pathSessionID(w, r)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	err := h.studyService.SubmitAnswer(r.Context(), sessionID, mustParseUUID(req.CardID), *req.IsCorrect)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnswerAck{Status: "ok"})
}

// CloseSession handles DELETE /sessions/{id} requests
// It removes the session from the registry; recorded mistake counters stay.
func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.pathSessionID(w, r)
	if !ok {
		return
	}

	if err := h.studyService.CloseSession(r.Context(), sessionID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathSessionID extracts and parses the {id} path parameter. On failure it
// writes the error response and returns false.
func (h *SessionHandler) pathSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	pathID := chi.URLParam(r, "id")
	if pathID == "" {
		log.Warn("session ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Session ID is required")
		return uuid.Nil, false
	}

	sessionID, err := uuid.Parse(pathID)
	if err != nil {
		// Malformed identifiers can never have been issued by the service,
		// so they read as not-found rather than bad-request.
		log.Debug("invalid session ID format", slog.String("session_id", pathID))
		shared.RespondWithError(w, r, http.StatusNotFound, "Session not found")
		return uuid.Nil, false
	}

	return sessionID, true
}
