package models

import "time"

// Reservation is a committed booking record. All wall-clock fields are in
// the reference timezone; Timezone records the booking client's zone for
// display only. Records are immutable once written.
type Reservation struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	UserName      string    `bson:"userName,omitempty" json:"userName,omitempty"`
	SessionType   string    `bson:"sessionType" json:"sessionType"`
	Date          string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime     string    `bson:"startTime" json:"startTime"` // "HH:MM" reference wall clock
	EndTime       string    `bson:"endTime" json:"endTime"`
	Duration      int       `bson:"duration" json:"duration"` // hours
	Timezone      string    `bson:"timezone" json:"timezone"` // booking client's zone
	Price         float64   `bson:"price" json:"price"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"` // "paid" or "pending"
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// GlobalReservation is the collision-relevant projection of a Reservation
// kept in the global ledger. It carries only what the collision filter and
// conflict index need.
type GlobalReservation struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	Date          string    `bson:"date" json:"date"`
	StartTime     string    `bson:"startTime" json:"startTime"`
	EndTime       string    `bson:"endTime" json:"endTime"`
	Duration      int       `bson:"duration" json:"duration"`
	SessionType   string    `bson:"sessionType" json:"sessionType"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// GlobalView returns the global-ledger projection of the reservation.
func (r Reservation) GlobalView() GlobalReservation {
	return GlobalReservation{
		ID:            r.ID,
		UserID:        r.UserID,
		Date:          r.Date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Duration:      r.Duration,
		SessionType:   r.SessionType,
		PaymentStatus: r.PaymentStatus,
		CreatedAt:     r.CreatedAt,
	}
}
