package booking

import (
	"context"
	"fmt"
	"time"

	"bluerobins/models"
	"bluerobins/tasks"
	"bluerobins/utils"

	"go.uber.org/zap"
)

// syncCalendar attaches the external calendar event to a persisted
// booking. With a queue configured the work is handed to the background
// worker, which owns the quota retry budget; otherwise the event is
// created inline. In both paths a calendar failure is logged and the
// booking stands.
func (se *DefaultSchedulingEngine) syncCalendar(ctx context.Context, booking *models.Booking, mentor *models.MentorProfile, id models.Identity) {
	logger := utils.GetLogger()

	summary := booking.Title
	if summary == "" {
		summary = fmt.Sprintf("Session with %s", mentor.Name)
	}
	attendees := make([]string, 0, 2)
	if mentor.Email != "" {
		attendees = append(attendees, mentor.Email)
	}
	if id.Email != "" {
		attendees = append(attendees, id.Email)
	}

	if se.Queue != nil {
		payload := models.CalendarSyncPayload{
			BookingID:      booking.ID,
			Summary:        summary,
			Description:    booking.Description,
			AttendeeEmails: attendees,
		}
		task, err := tasks.NewCalendarSyncTask(payload)
		if err == nil {
			_, err = se.Queue.Enqueue(task)
		}
		if err != nil {
			logger.Error("failed to enqueue calendar sync",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
		return
	}

	if se.Calendar == nil {
		return
	}
	res := se.Calendar.CreateEvent(ctx, models.EventRequest{
		Summary:        summary,
		Description:    booking.Description,
		Start:          booking.StartTime,
		End:            booking.EndTime,
		AttendeeEmails: attendees,
	})
	if res.Err != nil {
		logger.Warn("calendar event creation failed, booking stands",
			zap.String("bookingID", booking.ID), zap.Error(res.Err))
		return
	}
	if res.EventID == "" {
		return
	}
	if err := se.BookingRepo.SetCalendarEvent(booking.ID, res.EventID, res.MeetLink); err != nil {
		logger.Error("failed to store calendar event on booking",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}
	booking.CalendarEventID = res.EventID
	booking.MeetLink = res.MeetLink
}

// reminderLead is how long before a session the reminder email fires.
const reminderLead = time.Hour

// scheduleReminder queues the pre-session reminder. Requires a queue;
// sessions starting within the lead window get no reminder.
func (se *DefaultSchedulingEngine) scheduleReminder(booking *models.Booking) {
	if se.Queue == nil {
		return
	}
	fireAt := booking.StartTime.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return
	}

	logger := utils.GetLogger()
	task, opts, err := tasks.NewReminderTask(models.ReminderPayload{
		BookingID: booking.ID,
		FireDate:  fireAt.Format(time.RFC3339),
	}, fireAt)
	if err == nil {
		_, err = se.Queue.Enqueue(task, opts...)
	}
	if err != nil {
		logger.Warn("failed to schedule session reminder",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
