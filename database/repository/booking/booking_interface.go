package bookingRepo

import (
	"context"
	"time"

	"bluerobins/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves one booking.
	GetByID(id string) (*models.Booking, error)
	// Create inserts a single booking row.
	Create(ctx context.Context, booking *models.Booking) error
	// CreateBatch inserts bookings in order as one all-or-nothing
	// batch. On a mid-batch failure it removes the rows it already
	// wrote and returns a BatchInsertError naming the failed session.
	CreateBatch(ctx context.Context, bookings []models.Booking) error
	// GetByMentorAndRange returns the mentor's bookings whose time
	// range intersects [from, to).
	GetByMentorAndRange(mentorID string, from, to time.Time) ([]models.Booking, error)
	// ListByUser returns bookings where the user is the booker or the mentor.
	ListByUser(userID string) ([]models.Booking, error)
	// SetCalendarEvent writes the external event id and join link back
	// onto a booking.
	SetCalendarEvent(id, eventID, meetLink string) error
	// SetStatus updates the booking status.
	SetStatus(id, status string) error
	// UpdateTimes moves a booking's start and end.
	UpdateTimes(id string, start, end time.Time) error
}
