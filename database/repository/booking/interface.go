package bookingRepo

import (
	"context"

	"slotwise/models"
)

// BookingRepository is the reservation ledger contract. Reads are unfiltered
// snapshots; CreateNewBooking is the sole serialization point for commits.
type BookingRepository interface {
	// GetGlobalBookings returns the collision-relevant projection of every
	// committed reservation, across all users.
	GetGlobalBookings(ctx context.Context) ([]models.GlobalReservation, error)

	// GetUserBookings returns all full reservation records for one user.
	GetUserBookings(ctx context.Context, userID string) ([]models.Reservation, error)

	// CreateNewBooking writes the full record to the per-user view and the
	// collision subset to the global view as one atomic unit. A concurrent
	// commit for the same (date, startTime) fails with ErrBookingConflict;
	// any other write failure surfaces as ErrPersistence and leaves neither
	// projection visible.
	CreateNewBooking(ctx context.Context, reservation *models.Reservation) error
}
