package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for MistakeStats
var (
	ErrEmptyStatsUserID = errors.New("mistake stats user ID cannot be empty")
	ErrEmptyStatsCardID = errors.New("mistake stats card ID cannot be empty")
	ErrEmptyStatsExamID = errors.New("mistake stats exam ID cannot be empty")
	ErrNegativeMistakes = errors.New("mistake count must be greater than or equal to 0")
)

// MistakeStats tracks how many times a user has answered a specific card
// incorrectly. There is exactly one entry per (user, card, exam) combination.
// The counter is only ever incremented by this subsystem, never decremented;
// the smart strategy uses it to bias sessions toward previously-missed cards.
type MistakeStats struct {
	UserID    uuid.UUID `json:"user_id"`
	CardID    uuid.UUID `json:"card_id"`
	ExamID    uuid.UUID `json:"exam_id"`
	Mistakes  int       `json:"mistakes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMistakeStats creates a new mistake counter for a user and card with a
// zero count. Returns an error if validation fails.
func NewMistakeStats(userID, cardID, examID uuid.UUID) (*MistakeStats, error) {
	now := time.Now().UTC()
	stats := &MistakeStats{
		UserID:    userID,
		CardID:    cardID,
		ExamID:    examID,
		Mistakes:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := stats.Validate(); err != nil {
		return nil, err
	}

	return stats, nil
}

// Validate checks if the MistakeStats has valid data.
// Returns an error if any field fails validation.
func (s *MistakeStats) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptyStatsUserID
	}

	if s.CardID == uuid.Nil {
		return ErrEmptyStatsCardID
	}

	if s.ExamID == uuid.Nil {
		return ErrEmptyStatsExamID
	}

	if s.Mistakes < 0 {
		return ErrNegativeMistakes
	}

	return nil
}
