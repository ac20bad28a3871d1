package bookingRepo

import "errors"

var (
	// ErrBookingConflict means the slot was taken between the caller's
	// availability read and the commit. The user must re-select; the
	// operation is never retried automatically.
	ErrBookingConflict = errors.New("slot already booked")

	// ErrPersistence means the atomic dual write could not complete. The
	// booking must not be treated as confirmed.
	ErrPersistence = errors.New("booking could not be persisted")
)
