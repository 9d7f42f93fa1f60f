package domain

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestNewExamSession(t *testing.T) {
	t.Parallel() // Enable parallel execution

	userID := uuid.New()
	examID := uuid.New()
	questions := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	session := NewExamSession(userID, examID, questions)

	if session.ID == uuid.Nil {
		t.Error("Expected non-nil session ID, got nil UUID")
	}
	if session.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, session.UserID)
	}
	if session.ExamID != examID {
		t.Errorf("Expected exam ID %s, got %s", examID, session.ExamID)
	}
	if session.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}
	if session.Len() != len(questions) {
		t.Errorf("Expected %d questions, got %d", len(questions), session.Len())
	}
	if len(session.Answers()) != 0 {
		t.Errorf("Expected empty answer map, got %d entries", len(session.Answers()))
	}

	// The session keeps its own copy of the question list
	questions[0] = uuid.New()
	if session.Questions()[0] == questions[0] {
		t.Error("Expected session questions to be independent of the input slice")
	}

	// Two sessions over the same inputs get distinct identifiers
	other := NewExamSession(userID, examID, questions)
	if other.ID == session.ID {
		t.Error("Expected distinct session IDs")
	}
}

func TestExamSessionQuestionsReturnsCopy(t *testing.T) {
	t.Parallel() // Enable parallel execution

	questions := []uuid.UUID{uuid.New(), uuid.New()}
	session := NewExamSession(uuid.New(), uuid.New(), questions)

	got := session.Questions()
	got[0] = uuid.New()

	if session.Questions()[0] != questions[0] {
		t.Error("Expected mutating the returned slice to leave the session unchanged")
	}
}

func TestExamSessionRecordAnswer(t *testing.T) {
	t.Parallel() // Enable parallel execution

	questions := []uuid.UUID{uuid.New(), uuid.New()}
	session := NewExamSession(uuid.New(), uuid.New(), questions)

	// Answer a member card
	if err := session.RecordAnswer(questions[0], false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	isCorrect, ok := session.Answer(questions[0])
	if !ok {
		t.Fatal("Expected an answer to be recorded")
	}
	if isCorrect {
		t.Error("Expected recorded answer to be incorrect")
	}

	// Re-answering overwrites the previous value
	if err := session.RecordAnswer(questions[0], true); err != nil {
		t.Fatalf("Expected no error on re-answer, got %v", err)
	}
	isCorrect, _ = session.Answer(questions[0])
	if !isCorrect {
		t.Error("Expected re-answer to overwrite the recorded value")
	}
	if len(session.Answers()) != 1 {
		t.Errorf("Expected a single answer entry, got %d", len(session.Answers()))
	}

	// A card outside the question list is rejected
	err := session.RecordAnswer(uuid.New(), true)
	if !errors.Is(err, ErrQuestionNotInSession) {
		t.Errorf("Expected ErrQuestionNotInSession, got %v", err)
	}
	if len(session.Answers()) != 1 {
		t.Error("Expected rejected answer to leave the answer map unchanged")
	}
}

func TestExamSessionRecordAnswerEmptyQuestionList(t *testing.T) {
	t.Parallel() // Enable parallel execution

	session := NewExamSession(uuid.New(), uuid.New(), nil)

	if session.Len() != 0 {
		t.Errorf("Expected empty question list, got %d", session.Len())
	}

	// With no questions, every answer is out of session
	err := session.RecordAnswer(uuid.New(), true)
	if !errors.Is(err, ErrQuestionNotInSession) {
		t.Errorf("Expected ErrQuestionNotInSession, got %v", err)
	}
}

func TestExamSessionAnswersReturnsCopy(t *testing.T) {
	t.Parallel() // Enable parallel execution

	questions := []uuid.UUID{uuid.New()}
	session := NewExamSession(uuid.New(), uuid.New(), questions)

	if err := session.RecordAnswer(questions[0], true); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	answers := session.Answers()
	answers[questions[0]] = false
	answers[uuid.New()] = true

	got := session.Answers()
	if len(got) != 1 {
		t.Errorf("Expected a single answer entry, got %d", len(got))
	}
	if !got[questions[0]] {
		t.Error("Expected mutating the returned map to leave the session unchanged")
	}
}

func TestExamSessionConcurrentAnswers(t *testing.T) {
	t.Parallel() // Enable parallel execution

	questions := make([]uuid.UUID, 20)
	for i := range questions {
		questions[i] = uuid.New()
	}
	session := NewExamSession(uuid.New(), uuid.New(), questions)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for j := 0; j < len(questions); j++ {
				q := questions[(offset+j)%len(questions)]
				if err := session.RecordAnswer(q, j%2 == 0); err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				session.Answers()
				session.Answer(q)
			}
		}(i)
	}
	wg.Wait()

	if len(session.Answers()) != len(questions) {
		t.Errorf("Expected %d answers, got %d", len(questions), len(session.Answers()))
	}
}
