// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnsupportedStrategy is returned when a session strategy name does
	// not match one of the known strategies (full, random, smart).
	ErrUnsupportedStrategy = errors.New("unsupported session strategy")

	// ErrQuestionNotInSession is returned when an answer references a card
	// that is not part of the session's question list.
	ErrQuestionNotInSession = errors.New("question is not part of this session")
)
