package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Exam-specific validation errors
var (
	// ErrExamIDEmpty is returned when an exam ID is empty or nil.
	ErrExamIDEmpty = errors.New("exam ID cannot be empty")

	// ErrExamTitleEmpty is returned when an exam's title is empty.
	ErrExamTitleEmpty = errors.New("exam title cannot be empty")

	// ErrExamCreatorIDEmpty is returned when an exam's creator ID is empty or nil.
	ErrExamCreatorIDEmpty = errors.New("exam creator ID cannot be empty")
)

// Exam represents a named, ordered collection of flashcards owned by a creator.
// The session subsystem treats exams as read-only containers for cards.
type Exam struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatorID uuid.UUID `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewExam creates a new Exam with the given title and creator.
// It generates a new UUID for the exam ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewExam(title string, creatorID uuid.UUID) (*Exam, error) {
	now := time.Now().UTC()
	exam := &Exam{
		ID:        uuid.New(),
		Title:     title,
		CreatorID: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := exam.Validate(); err != nil {
		return nil, err
	}

	return exam, nil
}

// Validate checks if the Exam has valid data.
// Returns an error if any field fails validation.
func (e *Exam) Validate() error {
	if e.ID == uuid.Nil {
		return ErrExamIDEmpty
	}

	if e.Title == "" {
		return ErrExamTitleEmpty
	}

	if e.CreatorID == uuid.Nil {
		return ErrExamCreatorIDEmpty
	}

	return nil
}
