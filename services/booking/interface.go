package booking

import (
	"context"
	"time"

	bookingRepo "bluerobins/database/repository/booking"
	mentorRepo "bluerobins/database/repository/mentor"
	projectRepo "bluerobins/database/repository/project"
	"bluerobins/models"
	"bluerobins/services/calendar"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// SchedulingService is the booking engine surface: slot discovery,
// booking writes, and session lifecycle.
type SchedulingService interface {
	GetWeeklyAvailableSlots(mentorID, fromDate string, intervalMinutes int) (map[string]models.DayAvailability, error)
	BookSlot(ctx context.Context, id models.Identity, req models.SingleBookingRequest) (*models.Booking, error)
	BookProject(ctx context.Context, id models.Identity, req models.ProjectBookingRequest) ([]models.Booking, error)
	ListBookings(id models.Identity) ([]models.Booking, error)
	CompleteBooking(id models.Identity, bookingID string) error
	RescheduleBooking(ctx context.Context, id models.Identity, bookingID string, newStart time.Time) (*models.Booking, error)
}

// DefaultSchedulingEngine implements SchedulingService.
//
// Queue, when set, moves calendar event creation off the request path:
// the engine enqueues a sync task and returns, and the worker owns the
// retry budget. With Queue nil the engine calls the calendar client
// inline; either way a calendar failure never fails the booking.
type DefaultSchedulingEngine struct {
	BookingRepo bookingRepo.BookingRepository
	MentorRepo  mentorRepo.MentorRepository
	ProjectRepo projectRepo.ProjectRepository
	Calendar    calendar.EventClient
	Queue       *asynq.Client
	// Cache, when set, holds recent slot query responses for a short
	// TTL. Booking writes against a mentor invalidate nothing; staleness
	// is bounded by the TTL and the final word is the conditional write.
	Cache *redis.Client
}
