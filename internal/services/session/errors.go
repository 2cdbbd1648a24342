package session

import "errors"

// Business outcomes. These are expected results of normal use, distinguished
// from backend faults which are wrapped and propagated as-is.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrPersonNotFound  = errors.New("person not found in session")
	ErrAlreadyClaimed  = errors.New("person has already claimed")
	ErrNotClaimed      = errors.New("person has not claimed yet")
	ErrDrawPending     = errors.New("draw is not complete yet")
	ErrNoAssignment    = errors.New("no assignment exists for this person")
	ErrConfigNotFound  = errors.New("config not found")

	// ErrInvalidInput wraps all validation failures; these are rejected
	// before any persistence attempt
	ErrInvalidInput = errors.New("invalid input")
)

// Constructor errors
var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilSessionRepo = errors.New("session repository cannot be nil")
	ErrNilConfigRepo  = errors.New("config repository cannot be nil")
	ErrNilEngine      = errors.New("draw engine cannot be nil")
)
