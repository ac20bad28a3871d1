package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	bookingRepo "slotwise/database/repository/booking"
	"slotwise/models"
	"slotwise/services/scheduling"

	"github.com/stretchr/testify/require"
)

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.BookingSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*models.BookingSession)}
}

func (s *memSessionStore) Save(_ context.Context, session *models.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *session
	s.sessions[session.SessionID] = &clone
	return nil
}

func (s *memSessionStore) Get(_ context.Context, sessionID string) (*models.BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	clone := *stored
	return &clone, nil
}

func (s *memSessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

type memBookingRepo struct {
	mu         sync.Mutex
	global     []models.GlobalReservation
	users      map[string][]models.Reservation
	failCreate error
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{users: make(map[string][]models.Reservation)}
}

func (r *memBookingRepo) GetGlobalBookings(_ context.Context) ([]models.GlobalReservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.GlobalReservation, len(r.global))
	copy(out, r.global)
	return out, nil
}

func (r *memBookingRepo) GetUserBookings(_ context.Context, userID string) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Reservation(nil), r.users[userID]...), nil
}

func (r *memBookingRepo) CreateNewBooking(_ context.Context, reservation *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return r.failCreate
	}
	for _, g := range r.global {
		if g.Date == reservation.Date && g.StartTime == reservation.StartTime {
			return bookingRepo.ErrBookingConflict
		}
	}
	r.global = append(r.global, reservation.GlobalView())
	r.users[reservation.UserID] = append(r.users[reservation.UserID], *reservation)
	return nil
}

type memSettingsRepo struct {
	rules []models.AvailabilityRule
	err   error
}

func (r *memSettingsRepo) GetAvailabilityRules(_ context.Context) ([]models.AvailabilityRule, error) {
	return r.rules, r.err
}

func (r *memSettingsRepo) SetAvailabilityRules(_ context.Context, rules []models.AvailabilityRule) error {
	r.rules = rules
	return nil
}

type stubPayment struct {
	calls int
	err   error
}

func (p *stubPayment) ProcessPayment(_ context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &models.Invoice{
		InvoiceID: "inv-test",
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "paid",
		CreatedAt: time.Now(),
	}, nil
}

type stubNotifier struct {
	confirmations []string
	reminders     []time.Time
}

func (n *stubNotifier) SendBookingConfirmation(_ context.Context, r *models.Reservation) error {
	n.confirmations = append(n.confirmations, r.ID)
	return nil
}

func (n *stubNotifier) ScheduleReminder(_ context.Context, _ *models.Reservation, fireAt time.Time) error {
	n.reminders = append(n.reminders, fireAt)
	return nil
}

type serviceFixture struct {
	svc      *DefaultBookingSessionService
	repo     *memBookingRepo
	store    *memSessionStore
	payment  *stubPayment
	notifier *stubNotifier
	engine   *scheduling.Engine
}

// newFixture pins "now" to Monday 2024-06-10 09:00 in the reference zone
// with a Monday 11:00-13:00 schedule.
func newFixture(t *testing.T) *serviceFixture {
	t.Helper()
	engine, err := scheduling.NewEngine("Asia/Kolkata", 330, 60)
	require.NoError(t, err)
	now, err := engine.ReferenceInstant("09:00", "2024-06-10")
	require.NoError(t, err)

	f := &serviceFixture{
		repo:     newMemBookingRepo(),
		store:    newMemSessionStore(),
		payment:  &stubPayment{},
		notifier: &stubNotifier{},
		engine:   engine,
	}
	f.svc = &DefaultBookingSessionService{
		Repo: f.repo,
		SettingsRepo: &memSettingsRepo{rules: []models.AvailabilityRule{
			{DayOfWeek: 1, Start: "11:00", End: "13:00"},
		}},
		Engine:   engine,
		Payment:  f.payment,
		Notifier: f.notifier,
		Sessions: f.store,
		Now:      func() time.Time { return now },
	}
	return f
}

// driveToPayment walks a fresh session to the confirming_payment step with
// the Monday 11:00 slot selected.
func driveToPayment(t *testing.T, f *serviceFixture) *models.BookingSession {
	t.Helper()
	ctx := context.Background()

	session, err := f.svc.InitiateSession(ctx, "u1", "Ada", "Asia/Kolkata")
	require.NoError(t, err)
	require.Equal(t, models.StepSelectingDate, session.Step)
	require.NotEmpty(t, session.Candidates)

	session, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{
		Action: "select_date", Date: "2024-06-10",
	})
	require.NoError(t, err)
	require.Equal(t, models.StepSelectingSlot, session.Step)

	session, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{
		Action: "select_slot", SlotStart: "11:00",
	})
	require.NoError(t, err)
	require.Equal(t, models.StepSelectingSessionType, session.Step)

	session, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{
		Action: "select_session_type", SessionType: models.SessionTypes[0],
	})
	require.NoError(t, err)
	require.Equal(t, models.StepConfirmingPayment, session.Step)
	return session
}

func TestBookingFlowCommit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := driveToPayment(t, f)

	reservation, err := f.svc.ConfirmBooking(ctx, session.SessionID)
	require.NoError(t, err)

	require.Equal(t, "u1", reservation.UserID)
	require.Equal(t, "2024-06-10", reservation.Date)
	require.Equal(t, "11:00", reservation.StartTime)
	require.Equal(t, "12:00", reservation.EndTime)
	require.Equal(t, models.PriceOneHour, reservation.Price)
	require.Equal(t, "paid", reservation.PaymentStatus)
	require.Equal(t, "Asia/Kolkata", reservation.Timezone)

	// Both ledger projections carry the commit.
	global, err := f.repo.GetGlobalBookings(ctx)
	require.NoError(t, err)
	require.Len(t, global, 1)
	require.Equal(t, reservation.ID, global[0].ID)

	mine, err := f.svc.GetUserBookings(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, reservation.ID, mine[0].ID)

	// Session is gone after commit.
	_, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{Action: "back"})
	require.ErrorIs(t, err, ErrSessionNotFound)

	require.Equal(t, []string{reservation.ID}, f.notifier.confirmations)
	start, err := f.engine.ReferenceInstant("11:00", "2024-06-10")
	require.NoError(t, err)
	require.Len(t, f.notifier.reminders, 1)
	require.True(t, f.notifier.reminders[0].Equal(start.Add(-time.Hour)))
}

func TestSelectSlotAlreadyTaken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.global = []models.GlobalReservation{
		{ID: "other", Date: "2024-06-10", StartTime: "11:00", EndTime: "12:00", Duration: 1},
	}

	session, err := f.svc.InitiateSession(ctx, "u1", "Ada", "Asia/Kolkata")
	require.NoError(t, err)
	session, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{
		Action: "select_date", Date: "2024-06-10",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{
		Action: "select_slot", SlotStart: "11:00",
	})
	require.ErrorIs(t, err, ErrSlotUnavailable)

	// The free neighbor still works.
	session, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{
		Action: "select_slot", SlotStart: "12:00",
	})
	require.NoError(t, err)
	require.Equal(t, "12:00", session.SelectedSlot.Start)
}

func TestConfirmSlotTakenAdvisoryRecheck(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := driveToPayment(t, f)

	// A competing commit lands between selection and confirmation.
	f.repo.global = append(f.repo.global, models.GlobalReservation{
		ID: "rival", Date: "2024-06-10", StartTime: "11:00", EndTime: "12:00", Duration: 1,
	})

	_, err := f.svc.ConfirmBooking(ctx, session.SessionID)
	require.ErrorIs(t, err, ErrSlotUnavailable)
	require.Zero(t, f.payment.calls)
}

func TestConfirmRepoConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := driveToPayment(t, f)
	f.repo.failCreate = bookingRepo.ErrBookingConflict

	_, err := f.svc.ConfirmBooking(ctx, session.SessionID)
	require.ErrorIs(t, err, bookingRepo.ErrBookingConflict)

	// Losing the race does not burn the session.
	_, err = f.store.Get(ctx, session.SessionID)
	require.NoError(t, err)
}

func TestConfirmPersistenceError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := driveToPayment(t, f)
	f.repo.failCreate = fmt.Errorf("%w: connection reset", bookingRepo.ErrPersistence)

	_, err := f.svc.ConfirmBooking(ctx, session.SessionID)
	require.ErrorIs(t, err, bookingRepo.ErrPersistence)
}

func TestConfirmPaymentFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := driveToPayment(t, f)
	f.payment.err = errors.New("card declined")

	_, err := f.svc.ConfirmBooking(ctx, session.SessionID)
	require.Error(t, err)

	// Nothing committed.
	global, err := f.repo.GetGlobalBookings(ctx)
	require.NoError(t, err)
	require.Empty(t, global)
}

func TestConfirmBeforePaymentStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.InitiateSession(ctx, "u1", "Ada", "Asia/Kolkata")
	require.NoError(t, err)

	_, err = f.svc.ConfirmBooking(ctx, session.SessionID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateSessionInvalidTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.InitiateSession(ctx, "u1", "Ada", "Asia/Kolkata")
	require.NoError(t, err)

	// Cannot pick a slot before a date.
	_, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{
		Action: "select_slot", SlotStart: "11:00",
	})
	require.ErrorIs(t, err, ErrInvalidTransition)

	// Cannot rewind the initial step.
	_, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{Action: "back"})
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{Action: "teleport"})
	require.Error(t, err)

	_, err = f.svc.UpdateSession(ctx, "no-such-session", UpdateSessionInput{Action: "back"})
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateSessionRejectsUnknownSessionType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.InitiateSession(ctx, "u1", "Ada", "Asia/Kolkata")
	require.NoError(t, err)
	session, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{
		Action: "select_date", Date: "2024-06-10",
	})
	require.NoError(t, err)
	session, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{
		Action: "select_slot", SlotStart: "11:00",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{
		Action: "select_session_type", SessionType: "underwater basket weaving",
	})
	require.ErrorIs(t, err, ErrInvalidSessionType)
}

func TestBackRewindsAndClearsSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := driveToPayment(t, f)

	session, err := f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{Action: "back"})
	require.NoError(t, err)
	require.Equal(t, models.StepSelectingSessionType, session.Step)
	require.Empty(t, session.SessionType)

	session, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{Action: "back"})
	require.NoError(t, err)
	require.Equal(t, models.StepSelectingSlot, session.Step)
	require.Nil(t, session.SelectedSlot)

	// Reselect after rewind still works.
	session, err = f.svc.UpdateSession(ctx, session.SessionID, UpdateSessionInput{
		Action: "select_slot", SlotStart: "12:00",
	})
	require.NoError(t, err)
	require.Equal(t, "12:00", session.SelectedSlot.Start)
}

func TestInitiateFallsBackToDefaultSchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.svc.SettingsRepo = &memSettingsRepo{err: errors.New("settings store down")}

	session, err := f.svc.InitiateSession(ctx, "u1", "Ada", "Asia/Kolkata")
	require.NoError(t, err)
	require.NotEmpty(t, session.Candidates)
}

func TestCancelSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.InitiateSession(ctx, "u1", "Ada", "Asia/Kolkata")
	require.NoError(t, err)

	require.NoError(t, f.svc.CancelSession(ctx, session.SessionID))
	_, err = f.store.Get(ctx, session.SessionID)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionPrice(t *testing.T) {
	require.Equal(t, models.PriceOneHour, SessionPrice(1))
	require.Equal(t, models.PriceTwoHour, SessionPrice(2))
	require.Equal(t, models.PriceTwoHour, SessionPrice(3))
}
