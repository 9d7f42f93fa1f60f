package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewCard(t *testing.T) {
	t.Parallel() // Enable parallel execution

	examID := uuid.New()

	card, err := NewCard(examID, "What is the capital of France?", "Paris", 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if card.ExamID != examID {
		t.Errorf("Expected exam ID %s, got %s", examID, card.ExamID)
	}
	if card.Question != "What is the capital of France?" {
		t.Errorf("Unexpected question %q", card.Question)
	}
	if card.Answer != "Paris" {
		t.Errorf("Unexpected answer %q", card.Answer)
	}
	if card.Ordinal != 1 {
		t.Errorf("Expected ordinal 1, got %d", card.Ordinal)
	}
	if card.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}
	if card.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test invalid exam ID
	_, err = NewCard(uuid.Nil, "q", "a", 1)
	if err != ErrCardExamIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardExamIDEmpty, err)
	}

	// Test empty question
	_, err = NewCard(examID, "", "a", 1)
	if err != ErrCardQuestionEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardQuestionEmpty, err)
	}

	// Test invalid ordinal
	_, err = NewCard(examID, "q", "a", 0)
	if err != ErrCardOrdinalInvalid {
		t.Errorf("Expected error %v, got %v", ErrCardOrdinalInvalid, err)
	}
}

func TestCardValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	validCard := Card{
		ID:       uuid.New(),
		ExamID:   uuid.New(),
		Question: "q",
		Answer:   "a",
		Ordinal:  3,
	}

	if err := validCard.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidCard := validCard
	invalidCard.ID = uuid.Nil
	if err := invalidCard.Validate(); err != ErrCardIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardIDEmpty, err)
	}

	invalidCard = validCard
	invalidCard.Ordinal = -1
	if err := invalidCard.Validate(); err != ErrCardOrdinalInvalid {
		t.Errorf("Expected error %v, got %v", ErrCardOrdinalInvalid, err)
	}
}

func TestNewMistakeStats(t *testing.T) {
	t.Parallel() // Enable parallel execution

	userID := uuid.New()
	cardID := uuid.New()
	examID := uuid.New()

	stats, err := NewMistakeStats(userID, cardID, examID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if stats.UserID != userID || stats.CardID != cardID || stats.ExamID != examID {
		t.Error("Expected identifiers to match the constructor arguments")
	}
	if stats.Mistakes != 0 {
		t.Errorf("Expected zero initial mistakes, got %d", stats.Mistakes)
	}

	// Test missing identifiers
	if _, err := NewMistakeStats(uuid.Nil, cardID, examID); err != ErrEmptyStatsUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyStatsUserID, err)
	}
	if _, err := NewMistakeStats(userID, uuid.Nil, examID); err != ErrEmptyStatsCardID {
		t.Errorf("Expected error %v, got %v", ErrEmptyStatsCardID, err)
	}
	if _, err := NewMistakeStats(userID, cardID, uuid.Nil); err != ErrEmptyStatsExamID {
		t.Errorf("Expected error %v, got %v", ErrEmptyStatsExamID, err)
	}

	// Test negative counter rejection
	negative := MistakeStats{UserID: userID, CardID: cardID, ExamID: examID, Mistakes: -1}
	if err := negative.Validate(); err != ErrNegativeMistakes {
		t.Errorf("Expected error %v, got %v", ErrNegativeMistakes, err)
	}
}
