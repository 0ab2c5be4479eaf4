package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "bluerobins/database/repository/booking"
	"bluerobins/models"
	"bluerobins/utils"

	"go.uber.org/zap"
)

// CompleteBooking marks a session completed. Only the mentor on the
// booking may do this.
func (se *DefaultSchedulingEngine) CompleteBooking(id models.Identity, bookingID string) error {
	booking, err := se.BookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}
	if booking.MentorID != id.UserID {
		return ErrNotAllowed
	}
	return se.BookingRepo.SetStatus(bookingID, models.BookingCompleted)
}

// RescheduleBooking moves a session to a new start time (the end stays
// an hour out) and pushes the change to the external calendar event
// when one exists. A calendar failure leaves the new times in place.
func (se *DefaultSchedulingEngine) RescheduleBooking(ctx context.Context, id models.Identity, bookingID string, newStart time.Time) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := se.BookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}
	if booking.MentorID != id.UserID && booking.BookerID != id.UserID {
		return nil, ErrNotAllowed
	}

	newEnd := newStart.Add(sessionLength)
	if err := se.BookingRepo.UpdateTimes(bookingID, newStart, newEnd); err != nil {
		return nil, fmt.Errorf("failed to reschedule booking %s: %w", bookingID, err)
	}
	booking.StartTime = newStart
	booking.EndTime = newEnd

	if booking.CalendarEventID != "" && se.Calendar != nil {
		res := se.Calendar.UpdateEventTime(ctx, booking.CalendarEventID, newStart, newEnd)
		if res.Err != nil {
			logger.Warn("failed to move calendar event",
				zap.String("bookingID", bookingID),
				zap.String("eventID", booking.CalendarEventID),
				zap.Error(res.Err))
		}
	}
	return booking, nil
}
