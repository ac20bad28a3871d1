package models

import "time"

// PaymentRequest describes a charge to be confirmed before commit.
type PaymentRequest struct {
	UserID   string  `json:"userId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"` // "card" or "cash"
}

// Invoice is the payment collaborator's confirmation record.
type Invoice struct {
	InvoiceID string    `json:"invoiceId"`
	PaymentID string    `json:"paymentId,omitempty"`
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Method    string    `json:"method"`
	Status    string    `json:"status"` // "paid" or "pending"
	CreatedAt time.Time `json:"createdAt"`
}
