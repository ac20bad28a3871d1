package booking

import "errors"

var (
	// ErrSessionNotFound means the booking session expired or never existed.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrInvalidTransition means the requested step is not reachable from
	// the session's current state.
	ErrInvalidTransition = errors.New("invalid booking step transition")

	// ErrSlotUnavailable means the chosen candidate is already taken per
	// the latest ledger read.
	ErrSlotUnavailable = errors.New("selected slot is no longer available")

	// ErrInvalidSessionType means the requested session type is not offered.
	ErrInvalidSessionType = errors.New("unknown session type")
)
