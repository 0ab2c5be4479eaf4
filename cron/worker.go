package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bluerobins/config"
	bookingRepo "bluerobins/database/repository/booking"
	mentorRepo "bluerobins/database/repository/mentor"
	userRepo "bluerobins/database/repository/user"
	"bluerobins/models"
	"bluerobins/services/calendar"
	"bluerobins/services/email"
	"bluerobins/tasks"
	"bluerobins/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Worker runs the background queue: calendar event creation, outbound
// email, and session reminders. Everything here is retryable; asynq
// redelivers on returned errors.
type Worker struct {
	Bookings bookingRepo.BookingRepository
	Mentors  mentorRepo.MentorRepository
	Users    userRepo.UserRepository
	Calendar calendar.EventClient
	Email    email.Sender
}

// Start runs the asynq server in the background. Startup is retried a
// few times before giving up, since redis may still be coming up.
func (w *Worker) Start() {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCalendarSync, w.handleCalendarSync)
	mux.HandleFunc(tasks.TypeSendEmail, w.handleSendEmail)
	mux.HandleFunc(tasks.TypeSendReminder, w.handleSendReminder)

	go monitorRedisConnection()

	go func() {
		logger.Info("starting background worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				break
			}
			logger.Error("worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("worker start attempts exhausted")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// handleCalendarSync creates the external calendar event for a booking
// and writes the event id and join link back. A degraded calendar
// client reports success with no event id; the task completes and the
// booking simply stays without a link.
func (w *Worker) handleCalendarSync(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.CalendarSyncPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("invalid calendar sync payload", zap.Error(err))
		return err
	}

	booking, err := w.Bookings.GetByID(p.BookingID)
	if err != nil {
		logger.Warn("calendar sync for missing booking",
			zap.String("bookingID", p.BookingID), zap.Error(err))
		return nil
	}
	if booking.CalendarEventID != "" {
		return nil
	}

	res := w.Calendar.CreateEvent(ctx, models.EventRequest{
		Summary:        p.Summary,
		Description:    p.Description,
		Start:          booking.StartTime,
		End:            booking.EndTime,
		AttendeeEmails: p.AttendeeEmails,
	})
	if res.Err != nil {
		return fmt.Errorf("failed to create calendar event for booking %s: %w", p.BookingID, res.Err)
	}
	if res.EventID == "" {
		return nil
	}
	return w.Bookings.SetCalendarEvent(booking.ID, res.EventID, res.MeetLink)
}

func (w *Worker) handleSendEmail(_ context.Context, task *asynq.Task) error {
	var p models.EmailPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("invalid email payload", zap.Error(err))
		return err
	}
	return w.Email.Send(p.ToEmail, p.Subject, p.PlainBody, p.HTMLBody)
}

// handleSendReminder emails both parties shortly before a session. A
// booking that was cancelled or completed in the meantime is skipped.
func (w *Worker) handleSendReminder(_ context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("invalid reminder payload", zap.Error(err))
		return err
	}

	booking, err := w.Bookings.GetByID(p.BookingID)
	if err != nil {
		logger.Warn("reminder for missing booking",
			zap.String("bookingID", p.BookingID), zap.Error(err))
		return nil
	}
	if booking.Status != models.BookingScheduled {
		return nil
	}

	subject := fmt.Sprintf("Upcoming session: %s", booking.Title)
	body := fmt.Sprintf("Your session starts at %s.", booking.StartTime.Format(time.RFC1123))
	if booking.MeetLink != "" {
		body += "\n\nJoin: " + booking.MeetLink
	}

	if mentor, err := w.Mentors.GetByID(booking.MentorID); err == nil {
		if err := w.Email.Send(mentor.Email, subject, body, ""); err != nil {
			logger.Warn("failed to email mentor reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	if booker, err := w.Users.GetByID(booking.BookerID); err == nil {
		if err := w.Email.Send(booker.Email, subject, body, ""); err != nil {
			logger.Warn("failed to email booker reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	return nil
}

// monitorRedisConnection pings redis periodically so a dead queue shows
// up in the logs instead of as silent task loss.
func monitorRedisConnection() {
	logger := utils.GetLogger()
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("queue redis unreachable", zap.Error(err))
		}
		cancel()
	}
}
