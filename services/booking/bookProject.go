package booking

import (
	"context"
	"errors"
	"fmt"

	mentorRepo "bluerobins/database/repository/mentor"
	projectRepo "bluerobins/database/repository/project"
	"bluerobins/models"
	"bluerobins/services/scheduling"
	"bluerobins/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookProject purchases a whole multi-session project: one spot is
// claimed atomically, the session dates are distributed across the
// project's date range, and one booking row per session is written as
// an all-or-nothing batch. The spot claim happens exactly once per
// purchase, never per session.
func (se *DefaultSchedulingEngine) BookProject(ctx context.Context, id models.Identity, req models.ProjectBookingRequest) ([]models.Booking, error) {
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

	project, err := se.ProjectRepo.GetByID(req.ProjectID)
	if err != nil {
		if errors.Is(err, projectRepo.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project %s: %w", req.ProjectID, err)
	}

	// The capacity check and increment are a single conditional
	// update; losing the race for the last spot surfaces here as
	// ErrNoSpots with nothing written.
	if _, err := se.ProjectRepo.ClaimSpot(ctx, project.ID); err != nil {
		if errors.Is(err, projectRepo.ErrNoSpots) {
			return nil, ErrNoSpots
		}
		if errors.Is(err, projectRepo.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to claim spot on project %s: %w", project.ID, err)
	}

	title := req.Title
	if title == "" {
		title = project.Title
	}

	dates := scheduling.DistributeSessions(req.StartDate, project.EndDate, project.Sessions)
	bookings := make([]models.Booking, 0, len(dates))
	for _, start := range dates {
		bookings = append(bookings, models.Booking{
			ID:            uuid.New().String(),
			MentorID:      req.MentorID,
			BookerID:      id.UserID,
			StartTime:     start,
			EndTime:       start.Add(sessionLength),
			Status:        models.BookingScheduled,
			PaymentStatus: "confirmed",
			PaymentRef:    req.PaymentRef,
			ProjectID:     project.ID,
			Title:         title,
			Description:   project.Description,
		})
	}

	if err := se.BookingRepo.CreateBatch(ctx, bookings); err != nil {
		// The batch is compensated by the repository; give the spot back
		// so the failed purchase doesn't burn capacity.
		if relErr := se.ProjectRepo.ReleaseSpot(ctx, project.ID); relErr != nil {
			logger.Error("failed to release claimed spot after batch failure",
				zap.String("projectID", project.ID), zap.Error(relErr))
		}
		logger.Error("failed to book project sessions",
			zap.String("projectID", project.ID), zap.Error(err))
		return nil, utils.NewServiceError("bookingFailed", fmt.Sprintf("Failed to book slot: %v", err))
	}

	for i := range bookings {
		se.syncCalendar(ctx, &bookings[i], mentor, id)
		se.scheduleReminder(&bookings[i])
	}
	return bookings, nil
}
