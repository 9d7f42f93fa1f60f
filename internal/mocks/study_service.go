package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/tprep/tprep-api/internal/domain"
	"github.com/tprep/tprep-api/internal/service/study"
)

// MockStudyService implements study.StudyService for testing
type MockStudyService struct {
	// Custom behavior functions
	CreateSessionFn func(ctx context.Context, userID, examID uuid.UUID, strategy domain.Strategy, limit *int) (*domain.ExamSession, error)
	GetSessionFn    func(ctx context.Context, sessionID uuid.UUID) (*domain.ExamSession, error)
	SubmitAnswerFn  func(ctx context.Context, sessionID, cardID uuid.UUID, isCorrect bool) error
	CloseSessionFn  func(ctx context.Context, sessionID uuid.UUID) error

	// Default response values
	Session *domain.ExamSession
	Err     error
}

// Ensure MockStudyService implements study.StudyService
var _ study.StudyService = (*MockStudyService)(nil)

// CreateSession implements the study.StudyService interface
func (m *MockStudyService) CreateSession(
	ctx context.Context,
	userID, examID uuid.UUID,
	strategy domain.Strategy,
	limit *int,
) (*domain.ExamSession, error) {
	if m.CreateSessionFn != nil {
		return m.CreateSessionFn(ctx, userID, examID, strategy, limit)
	}
	return m.Session, m.Err
}

// GetSession implements the study.StudyService interface
func (m *MockStudyService) GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.ExamSession, error) {
	if m.GetSessionFn != nil {
		return m.GetSessionFn(ctx, sessionID)
	}
	return m.Session, m.Err
}

// SubmitAnswer implements the study.StudyService interface
func (m *MockStudyService) SubmitAnswer(ctx context.Context, sessionID, cardID uuid.UUID, isCorrect bool) error {
	if m.SubmitAnswerFn != nil {
		return m.SubmitAnswerFn(ctx, sessionID, cardID, isCorrect)
	}
	return m.Err
}

// CloseSession implements the study.StudyService interface
func (m *MockStudyService) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	if m.CloseSessionFn != nil {
		return m.CloseSessionFn(ctx, sessionID)
	}
	return m.Err
}
