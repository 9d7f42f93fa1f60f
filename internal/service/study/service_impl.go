package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tprep/tprep-api/internal/domain"
	"github.com/tprep/tprep-api/internal/domain/scheduler"
	"github.com/tprep/tprep-api/internal/platform/logger"
	"github.com/tprep/tprep-api/internal/store"
)

// Verify interface compliance at compile time
var _ StudyService = (*studyServiceImpl)(nil)

// studyServiceImpl implements the StudyService interface.
type studyServiceImpl struct {
	cardStore  store.CardStore
	statsStore store.MistakeStatsStore
	registry   *SessionRegistry
	sampler    *scheduler.Sampler
	logger     *slog.Logger
}

// NewStudyService creates a new StudyService implementation.
// The sampler carries the randomness source for the random strategy; pass a
// seeded one for reproducible session selection.
func NewStudyService(
	cardStore store.CardStore,
	statsStore store.MistakeStatsStore,
	registry *SessionRegistry,
	sampler *scheduler.Sampler,
	log *slog.Logger,
) StudyService {
	if cardStore == nil {
		panic("cardStore cannot be nil")
	}
	if statsStore == nil {
		panic("statsStore cannot be nil")
	}
	if registry == nil {
		panic("registry cannot be nil")
	}
	if sampler == nil {
		sampler = scheduler.NewSampler(nil)
	}
	if log == nil {
		log = slog.Default()
	}

	return &studyServiceImpl{
		cardStore:  cardStore,
		statsStore: statsStore,
		registry:   registry,
		sampler:    sampler,
		logger:     log.With(slog.String("component", "study_service")),
	}
}

// CreateSession implements StudyService.CreateSession.
// It loads the exam's catalog, resolves the question list for the strategy,
// builds the session and registers it under a fresh identifier.
func (s *studyServiceImpl) CreateSession(
	ctx context.Context,
	userID uuid.UUID,
	examID uuid.UUID,
	strategy domain.Strategy,
	limit *int,
) (*domain.ExamSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("creating study session",
		slog.String("user_id", userID.String()),
		slog.String("exam_id", examID.String()),
		slog.String("strategy", strategy.String()))

	cards, err := s.cardStore.GetByExam(ctx, examID)
	if err != nil {
		log.Error("failed to load exam catalog",
			slog.String("error", err.Error()),
			slog.String("exam_id", examID.String()))
		return nil, NewCreateSessionError("failed to load exam catalog", err)
	}

	if len(cards) == 0 {
		log.Warn("exam has no cards to schedule",
			slog.String("exam_id", examID.String()))
		return nil, fmt.Errorf("%w: exam %s", ErrExamHasNoCards, examID)
	}

	cardIDs := make([]uuid.UUID, len(cards))
	for i, card := range cards {
		cardIDs[i] = card.ID
	}

	var questions []uuid.UUID
	switch strategy {
	case domain.StrategyFull:
		// Every card, in catalog order.
		questions = cardIDs

	case domain.StrategyRandom:
		// Without a size hint the whole deck is selected, shuffled; the
		// hint is clamped to the deck size and zero yields an empty session.
		k := len(cardIDs)
		if limit != nil {
			k = *limit
		}
		questions = s.sampler.Sample(cardIDs, k)

	case domain.StrategySmart:
		size := scheduler.SmartSessionSize(len(cardIDs))
		topMistakes, err := s.statsStore.TopMistakes(ctx, userID, examID, size)
		if err != nil {
			log.Error("failed to load mistake statistics",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()),
				slog.String("exam_id", examID.String()))
			return nil, NewCreateSessionError("failed to load mistake statistics", err)
		}

		// Only cards with recorded mistakes are candidates, so the session
		// may come out smaller than the computed target, or even empty for a
		// user with a clean history. Zero-mistake cards do not backfill the
		// session.
		questions = make([]uuid.UUID, len(topMistakes))
		for i, stat := range topMistakes {
			questions[i] = stat.CardID
		}

	default:
		log.Warn("unsupported session strategy",
			slog.String("strategy", strategy.String()))
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedStrategy, strategy)
	}

	session := domain.NewExamSession(userID, examID, questions)
	s.registry.Put(session)

	log.Info("study session created",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("exam_id", examID.String()),
		slog.String("strategy", strategy.String()),
		slog.Int("questions", session.Len()))
	return session, nil
}

// GetSession implements StudyService.GetSession.
func (s *studyServiceImpl) GetSession(
	ctx context.Context,
	sessionID uuid.UUID,
) (*domain.ExamSession, error) {
	return s.registry.Get(sessionID)
}

// SubmitAnswer implements StudyService.SubmitAnswer.
// It records the answer on the session and, for wrong answers, writes
// through to the mistake counter. The increment happens on every wrong
// submission; a statistics store failure propagates without undoing the
// recorded answer.
func (s *studyServiceImpl) SubmitAnswer(
	ctx context.Context,
	sessionID, cardID uuid.UUID,
	isCorrect bool,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, err := s.registry.Get(sessionID)
	if err != nil {
		log.Debug("session not found for answer",
			slog.String("session_id", sessionID.String()))
		return err
	}

	if err := session.RecordAnswer(cardID, isCorrect); err != nil {
		log.Warn("answer references card outside session",
			slog.String("session_id", sessionID.String()),
			slog.String("card_id", cardID.String()))
		return err
	}

	if !isCorrect {
		if err := s.statsStore.IncrementMistake(ctx, session.UserID, cardID, session.ExamID); err != nil {
			log.Error("failed to increment mistake counter",
				slog.String("error", err.Error()),
				slog.String("session_id", sessionID.String()),
				slog.String("card_id", cardID.String()))
			return NewSubmitAnswerError("failed to increment mistake counter", err)
		}
	}

	log.Debug("answer recorded",
		slog.String("session_id", sessionID.String()),
		slog.String("card_id", cardID.String()),
		slog.Bool("is_correct", isCorrect))
	return nil
}

// CloseSession implements StudyService.CloseSession.
func (s *studyServiceImpl) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.registry.Remove(sessionID); err != nil {
		return err
	}

	log.Info("study session closed", slog.String("session_id", sessionID.String()))
	return nil
}
