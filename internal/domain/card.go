package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardExamIDEmpty is returned when a card's exam ID is empty or nil.
	ErrCardExamIDEmpty = errors.New("card exam ID cannot be empty")

	// ErrCardQuestionEmpty is returned when a card's question is empty.
	ErrCardQuestionEmpty = errors.New("card question cannot be empty")

	// ErrCardOrdinalInvalid is returned when a card's ordinal is not positive.
	ErrCardOrdinalInvalid = errors.New("card ordinal must be greater than 0")
)

// Card represents a single flashcard belonging to an exam.
// The Ordinal field defines the card's stable position within the exam's
// catalog order; the scheduler always reads cards in ascending ordinal order.
type Card struct {
	ID        uuid.UUID `json:"id"`
	ExamID    uuid.UUID `json:"exam_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Ordinal   int       `json:"ordinal"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCard creates a new Card with the given exam ID, question, answer and
// ordinal position. It generates a new UUID for the card ID and sets the
// creation/update timestamps. Returns an error if validation fails.
func NewCard(examID uuid.UUID, question, answer string, ordinal int) (*Card, error) {
	now := time.Now().UTC()
	card := &Card{
		ID:        uuid.New(),
		ExamID:    examID,
		Question:  question,
		Answer:    answer,
		Ordinal:   ordinal,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.ExamID == uuid.Nil {
		return ErrCardExamIDEmpty
	}

	if c.Question == "" {
		return ErrCardQuestionEmpty
	}

	if c.Ordinal <= 0 {
		return ErrCardOrdinalInvalid
	}

	return nil
}
