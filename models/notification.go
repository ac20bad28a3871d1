package models

// NotificationPayload is the queued message body for booking confirmation
// and reminder dispatch.
type NotificationPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate,omitempty"` // RFC3339, set for reminders
}
