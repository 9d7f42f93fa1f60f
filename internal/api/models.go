package api

import (
	"github.com/google/uuid"

	"github.com/tprep/tprep-api/internal/domain"
)

// CreateSessionRequest represents the request body for starting a study session.
// The user ID travels in the body because request authentication is handled
// outside this service.
type CreateSessionRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	ExamID   string `json:"exam_id" validate:"required,uuid"`
	Strategy string `json:"strategy" validate:"required,oneof=full random smart"`
	Limit    *int   `json:"limit,omitempty" validate:"omitempty,gte=0"`
}

// SubmitAnswerRequest represents the request body for answering a session question.
type SubmitAnswerRequest struct {
	CardID    string `json:"card_id" validate:"required,uuid"`
	IsCorrect *bool  `json:"is_correct" validate:"required"`
}

// SessionResponse represents the response data for a study session.
type SessionResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	ExamID    string          `json:"exam_id"`
	Questions []string        `json:"questions"`
	Answers   map[string]bool `json:"answers"`
}

// AnswerAck acknowledges a recorded answer.
type AnswerAck struct {
	Status string `json:"status"`
}

// sessionToResponse converts a domain session into its API representation.
func sessionToResponse(session *domain.ExamSession) SessionResponse {
	questions := session.Questions()
	questionIDs := make([]string, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.String()
	}

	answers := make(map[string]bool)
	for cardID, isCorrect := range session.Answers() {
		answers[cardID.String()] = isCorrect
	}

	return SessionResponse{
		ID:        session.ID.String(),
		UserID:    session.UserID.String(),
		ExamID:    session.ExamID.String(),
		Questions: questionIDs,
		Answers:   answers,
	}
}

// mustParseUUID converts an already-validated uuid string. The validator
// guarantees the format before this is called.
func mustParseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
