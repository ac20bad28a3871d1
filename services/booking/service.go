package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "slotwise/database/repository/booking"
	settingsRepo "slotwise/database/repository/settings"
	"slotwise/models"
	"slotwise/services/notification"
	"slotwise/services/scheduling"
	"slotwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Repo         bookingRepo.BookingRepository
	SettingsRepo settingsRepo.SettingsRepository
	Engine       *scheduling.Engine
	Payment      PaymentHandler
	Notifier     notification.Service
	Sessions     SessionStore
	Now          func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// loadRules fetches the weekly rule set, degrading to the default schedule
// when the settings store is empty or unreachable. Reads fail open.
func (s *DefaultBookingSessionService) loadRules(ctx context.Context) []models.AvailabilityRule {
	rules, err := s.SettingsRepo.GetAvailabilityRules(ctx)
	if err != nil {
		utils.GetLogger().Warn("falling back to default schedule", zap.Error(err))
		return models.DefaultSchedule
	}
	if len(rules) == 0 {
		return models.DefaultSchedule
	}
	return rules
}

// loadLedger fetches the global collision ledger, degrading to an empty set
// on failure so availability display never blocks. Writes stay fail-closed.
func (s *DefaultBookingSessionService) loadLedger(ctx context.Context) []models.GlobalReservation {
	ledger, err := s.Repo.GetGlobalBookings(ctx)
	if err != nil {
		utils.GetLogger().Warn("global ledger unavailable, treating as empty", zap.Error(err))
		return nil
	}
	return ledger
}

// InitiateSession opens a booking session and computes the annotated
// candidate slots for the whole horizon in the viewer's timezone.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, userID, userName, viewerTZ string) (*models.BookingSession, error) {
	rules := s.loadRules(ctx)
	candidates, err := s.Engine.Expand(rules, 0, s.now(), viewerTZ)
	if err != nil {
		return nil, err
	}
	candidates = scheduling.Annotate(candidates, s.loadLedger(ctx))

	session := &models.BookingSession{
		SessionID:  uuid.New().String(),
		UserID:     userID,
		UserName:   userName,
		Timezone:   viewerTZ,
		Step:       models.StepSelectingDate,
		Candidates: candidates,
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession advances or rewinds the booking flow. Selecting a date
// recomputes that date's candidates against a fresh ledger read.
func (s *DefaultBookingSessionService) UpdateSession(ctx context.Context, sessionID string, input UpdateSessionInput) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch input.Action {
	case "select_date":
		if session.Step != models.StepSelectingDate {
			return nil, ErrInvalidTransition
		}
		day, err := s.Engine.ReferenceInstant("00:00", input.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date selection: %w", err)
		}
		rules := s.loadRules(ctx)
		candidates, err := s.Engine.Expand(rules, 1, day, session.Timezone)
		if err != nil {
			return nil, err
		}
		session.Candidates = scheduling.Annotate(candidates, s.loadLedger(ctx))
		session.SelectedDate = input.Date
		session.Advance(models.StepSelectingSlot)

	case "select_slot":
		if session.Step != models.StepSelectingSlot {
			return nil, ErrInvalidTransition
		}
		var chosen *models.CandidateSlot
		for i := range session.Candidates {
			c := &session.Candidates[i]
			if c.Date == session.SelectedDate && c.Start == input.SlotStart {
				chosen = c
				break
			}
		}
		if chosen == nil {
			return nil, fmt.Errorf("no candidate at %s on %s", input.SlotStart, session.SelectedDate)
		}
		if !chosen.Available {
			return nil, ErrSlotUnavailable
		}
		slot := *chosen
		session.SelectedSlot = &slot
		session.Advance(models.StepSelectingSessionType)

	case "select_session_type":
		if session.Step != models.StepSelectingSessionType {
			return nil, ErrInvalidTransition
		}
		if !models.ValidSessionType(input.SessionType) {
			return nil, ErrInvalidSessionType
		}
		session.SessionType = input.SessionType
		session.Advance(models.StepConfirmingPayment)

	case "back":
		if !session.Back() {
			return nil, ErrInvalidTransition
		}

	default:
		return nil, fmt.Errorf("unknown session action %q", input.Action)
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking runs the commit protocol: re-validate the slot against a
// fresh ledger read, confirm payment, then write both ledger projections
// atomically. The storage layer's unique (date, startTime) constraint is the
// final arbiter between concurrent sessions; the re-validation here is
// advisory only.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*models.Reservation, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmingPayment || session.SelectedSlot == nil {
		return nil, ErrInvalidTransition
	}
	slot := *session.SelectedSlot

	checked := scheduling.Annotate([]models.CandidateSlot{slot}, s.loadLedger(ctx))
	if !checked[0].Available {
		return nil, ErrSlotUnavailable
	}

	price := SessionPrice(slot.Duration)
	invoice, err := s.Payment.ProcessPayment(ctx, models.PaymentRequest{
		UserID:   session.UserID,
		Amount:   price,
		Currency: "usd",
		Method:   "card",
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	startH, err := models.ParseHour(slot.Start)
	if err != nil {
		return nil, err
	}
	reservation := &models.Reservation{
		ID:            uuid.New().String(),
		UserID:        session.UserID,
		UserName:      session.UserName,
		SessionType:   session.SessionType,
		Date:          slot.Date,
		StartTime:     slot.Start,
		EndTime:       models.FormatHour(startH + slot.Duration),
		Duration:      slot.Duration,
		Timezone:      session.Timezone,
		Price:         price,
		PaymentStatus: invoice.Status,
		CreatedAt:     s.now(),
	}

	if err := s.Repo.CreateNewBooking(ctx, reservation); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("booking commit failed: %w", err)
	}

	session.Advance(models.StepCommitted)
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to clear committed session", zap.Error(err))
	}

	if s.Notifier != nil {
		if err := s.notifyCommit(ctx, reservation); err != nil {
			utils.GetLogger().Warn("booking notification dispatch failed",
				zap.String("bookingID", reservation.ID), zap.Error(err))
		}
	}

	return reservation, nil
}

// notifyCommit enqueues the confirmation push and a reminder one hour before
// the session starts. Dispatch failures never fail the commit.
func (s *DefaultBookingSessionService) notifyCommit(ctx context.Context, r *models.Reservation) error {
	if err := s.Notifier.SendBookingConfirmation(ctx, r); err != nil {
		return err
	}
	startAt, err := s.Engine.ReferenceInstant(r.StartTime, r.Date)
	if err != nil {
		return err
	}
	return s.Notifier.ScheduleReminder(ctx, r, startAt.Add(-time.Hour))
}

// CancelSession discards a pre-commit session.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// GetUserBookings returns the user's reservation history.
func (s *DefaultBookingSessionService) GetUserBookings(ctx context.Context, userID string) ([]models.Reservation, error) {
	return s.Repo.GetUserBookings(ctx, userID)
}
