package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"bluerobins/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler captures funds for a checkout.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// StripePaymentHandler implements PaymentHandler with Stripe
// PaymentIntents. The global stripe key is set once in main.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler constructs the handler.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func validateRequest(req models.PaymentRequest) error {
	if req.UserID == "" {
		return errors.New("missing user id")
	}
	if req.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if req.Currency == "" {
		return errors.New("missing currency")
	}
	if req.PaymentMethodID == "" {
		return errors.New("missing payment method")
	}
	return nil
}

// ProcessPayment creates and confirms a PaymentIntent, returning the
// invoice for the capture. The opaque Stripe id lands on the invoice;
// callers thread it onto bookings as the payment reference.
func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency:      stripe.String(strings.ToLower(req.Currency)),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		h.logger.Error("payment capture failed",
			zap.String("user", req.UserID), zap.Error(err))
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.UpdatedAt = time.Now()
	if pi.Status == stripe.PaymentIntentStatusSucceeded {
		inv.Status = "paid"
	}

	h.logger.Info("payment captured",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID),
		zap.String("status", string(pi.Status)))
	return inv, nil
}
