package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotwise/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingConfirm  = "booking:confirm"
	TypeBookingReminder = "booking:reminder"
)

// Service dispatches booking notifications. Delivery is a thin external
// collaborator; the booking engine only enqueues.
type Service interface {
	SendBookingConfirmation(ctx context.Context, r *models.Reservation) error
	ScheduleReminder(ctx context.Context, r *models.Reservation, fireAt time.Time) error
}

// AsynqNotifier enqueues notification tasks on the Redis-backed queue.
type AsynqNotifier struct {
	client *asynq.Client
}

func NewAsynqNotifier(client *asynq.Client) *AsynqNotifier {
	return &AsynqNotifier{client: client}
}

func (n *AsynqNotifier) SendBookingConfirmation(ctx context.Context, r *models.Reservation) error {
	payload := models.NotificationPayload{
		BookingID: r.ID,
		UserID:    r.UserID,
		Title:     "Session confirmed",
		Body:      fmt.Sprintf("%s on %s at %s (%s)", r.SessionType, r.Date, r.StartTime, r.Timezone),
	}
	task, err := newTask(TypeBookingConfirm, payload)
	if err != nil {
		return err
	}
	if _, err := n.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue confirmation: %w", err)
	}
	return nil
}

func (n *AsynqNotifier) ScheduleReminder(ctx context.Context, r *models.Reservation, fireAt time.Time) error {
	if !fireAt.After(time.Now()) {
		return nil
	}
	payload := models.NotificationPayload{
		BookingID: r.ID,
		UserID:    r.UserID,
		Title:     "Session starting soon",
		Body:      fmt.Sprintf("%s starts at %s", r.SessionType, r.StartTime),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	task, err := newTask(TypeBookingReminder, payload)
	if err != nil {
		return err
	}
	if _, err := n.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

func newTask(taskType string, payload models.NotificationPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification payload: %w", err)
	}
	return asynq.NewTask(taskType, b), nil
}
