package booking

import (
	"context"

	"slotwise/models"
)

// UpdateSessionInput drives one forward or backward step of a booking
// session.
type UpdateSessionInput struct {
	Action      string `json:"action" binding:"required"` // "select_date", "select_slot", "select_session_type", "back"
	Date        string `json:"date,omitempty"`            // "YYYY-MM-DD", for select_date
	SlotStart   string `json:"slotStart,omitempty"`       // "HH:MM" reference wall clock, for select_slot
	SessionType string `json:"sessionType,omitempty"`     // for select_session_type
}

// BookingSessionService manages the stateful booking flow from availability
// display through the atomic commit.
type BookingSessionService interface {
	// InitiateSession opens a session for the user and returns it together
	// with the annotated candidate slots over the configured horizon,
	// localized to viewerTZ.
	InitiateSession(ctx context.Context, userID, userName, viewerTZ string) (*models.BookingSession, error)

	// UpdateSession advances or rewinds the session per the input, refreshing
	// candidate availability whenever the ledger view matters.
	UpdateSession(ctx context.Context, sessionID string, input UpdateSessionInput) (*models.BookingSession, error)

	// ConfirmBooking runs the commit protocol for the session's selected
	// slot. On success the session is terminal and the committed reservation
	// is returned.
	ConfirmBooking(ctx context.Context, sessionID string) (*models.Reservation, error)

	// CancelSession discards a session before commit.
	CancelSession(ctx context.Context, sessionID string) error

	// GetUserBookings returns the user's reservation history.
	GetUserBookings(ctx context.Context, userID string) ([]models.Reservation, error)
}
