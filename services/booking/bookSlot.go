package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	mentorRepo "bluerobins/database/repository/mentor"
	"bluerobins/models"
	"bluerobins/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionLength is fixed: every session runs exactly one hour from its
// start, regardless of what a client sends as the end time.
const sessionLength = time.Hour

// BookSlot persists a single-session booking. The payment reference has
// already been captured by checkout; this only writes the row and hands
// the calendar work off.
func (se *DefaultSchedulingEngine) BookSlot(ctx context.Context, id models.Identity, req models.SingleBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if req.MentorID == "" {
		return nil, ErrMissingMentor
	}
	mentor, err := se.MentorRepo.GetByID(req.MentorID)
	if err != nil {
		if errors.Is(err, mentorRepo.ErrMentorNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, fmt.Errorf("failed to load mentor %s: %w", req.MentorID, err)
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		MentorID:      req.MentorID,
		BookerID:      id.UserID,
		StartTime:     req.StartTime,
		EndTime:       req.StartTime.Add(sessionLength),
		Status:        models.BookingScheduled,
		PaymentStatus: "confirmed",
		PaymentRef:    req.PaymentRef,
		ProjectID:     req.ProjectID,
		Title:         req.Title,
		Description:   req.Description,
	}

	if err := se.BookingRepo.Create(ctx, booking); err != nil {
		logger.Error("failed to book slot",
			zap.String("mentorID", req.MentorID), zap.Error(err))
		return nil, utils.NewServiceError("bookingFailed", "Failed to book slot")
	}

	se.syncCalendar(ctx, booking, mentor, id)
	se.scheduleReminder(booking)
	return booking, nil
}

func (se *DefaultSchedulingEngine) ListBookings(id models.Identity) ([]models.Booking, error) {
	return se.BookingRepo.ListByUser(id.UserID)
}
