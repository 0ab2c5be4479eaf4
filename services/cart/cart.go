package cart

import (
	"context"
	"fmt"
	"time"

	cartRepo "bluerobins/database/repository/cart"
	"bluerobins/models"
	"bluerobins/services/booking"
	"bluerobins/services/payment"
	"bluerobins/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart     = utils.NewServiceError("emptyCart", "Your cart is empty")
	ErrPaymentFailed = utils.NewServiceError("paymentFailed", "Payment could not be completed")
)

// CartService manages a user's pending purchases and turns them into
// bookings at checkout.
type CartService interface {
	Get(id models.Identity) (*models.Cart, error)
	AddItem(id models.Identity, item models.CartItem) (*models.Cart, error)
	RemoveItem(id models.Identity, itemID string) (*models.Cart, error)
	Checkout(ctx context.Context, id models.Identity, req models.CheckoutRequest) (*models.CheckoutResult, error)
}

// DefaultCartService implements CartService. Checkout charges the whole
// cart once, then books item by item; a booking failure after capture
// is reported, not rolled back into the payment.
type DefaultCartService struct {
	CartRepo cartRepo.CartRepository
	Payments payment.PaymentHandler
	Engine   booking.SchedulingService
}

func (s *DefaultCartService) Get(id models.Identity) (*models.Cart, error) {
	return s.CartRepo.Get(id.UserID)
}

func (s *DefaultCartService) AddItem(id models.Identity, item models.CartItem) (*models.Cart, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.AddedAt = time.Now()
	if err := s.CartRepo.AddItem(id.UserID, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	return s.CartRepo.Get(id.UserID)
}

func (s *DefaultCartService) RemoveItem(id models.Identity, itemID string) (*models.Cart, error) {
	if err := s.CartRepo.RemoveItem(id.UserID, itemID); err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}
	return s.CartRepo.Get(id.UserID)
}

// Checkout captures one payment for the cart total, then books each
// item against that payment. Booking stops at the first failed item;
// everything booked so far stands, the failed and remaining items stay
// in the cart, and the failure reason is reported on the result.
func (s *DefaultCartService) Checkout(ctx context.Context, id models.Identity, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	logger := utils.GetLogger()

	cart, err := s.CartRepo.Get(id.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	currency := "usd"
	if cart.Items[0].Currency != "" {
		currency = cart.Items[0].Currency
	}

	invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		UserID:          id.UserID,
		Amount:          cart.Total(),
		Currency:        currency,
		PaymentMethodID: req.PaymentMethodID,
		Description:     fmt.Sprintf("BlueRobins checkout, %d item(s)", len(cart.Items)),
	})
	if err != nil {
		logger.Warn("checkout payment failed",
			zap.String("userID", id.UserID), zap.Error(err))
		return nil, ErrPaymentFailed
	}

	result := &models.CheckoutResult{Invoice: invoice}
	for _, item := range cart.Items {
		booked, err := s.bookItem(ctx, id, item, invoice.InvoiceID)
		if err != nil {
			logger.Error("checkout item failed after payment capture",
				zap.String("userID", id.UserID),
				zap.String("itemID", item.ID),
				zap.Error(err))
			result.Failed = err.Error()
			return result, nil
		}
		result.Bookings = append(result.Bookings, booked...)
		if err := s.CartRepo.RemoveItem(id.UserID, item.ID); err != nil {
			logger.Error("failed to remove booked cart item",
				zap.String("itemID", item.ID), zap.Error(err))
		}
	}
	return result, nil
}

func (s *DefaultCartService) bookItem(ctx context.Context, id models.Identity, item models.CartItem, paymentRef string) ([]models.Booking, error) {
	switch item.Kind {
	case models.CartItemProject:
		return s.Engine.BookProject(ctx, id, models.ProjectBookingRequest{
			MentorID:   item.MentorID,
			ProjectID:  item.ProjectID,
			StartDate:  item.StartTime,
			PaymentRef: paymentRef,
			Title:      item.Title,
		})
	case models.CartItemSlot:
		booked, err := s.Engine.BookSlot(ctx, id, models.SingleBookingRequest{
			MentorID:   item.MentorID,
			StartTime:  item.StartTime,
			EndTime:    item.StartTime.Add(time.Hour),
			PaymentRef: paymentRef,
			Title:      item.Title,
		})
		if err != nil {
			return nil, err
		}
		return []models.Booking{*booked}, nil
	default:
		return nil, fmt.Errorf("unknown cart item kind %q", item.Kind)
	}
}
