package tasks

import (
	"encoding/json"
	"time"

	"bluerobins/models"

	"github.com/hibiken/asynq"
)

// Task type names shared between enqueuers and the worker.
const (
	TypeCalendarSync = "calendar:sync"
	TypeSendEmail    = "email:send"
	TypeSendReminder = "reminder:send"
)

// NewCalendarSyncTask builds the background job that creates the
// external calendar event for a persisted booking.
func NewCalendarSyncTask(payload models.CalendarSyncPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCalendarSync, b), nil
}

// NewEmailTask builds an outbound email job.
func NewEmailTask(payload models.EmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendEmail, b), nil
}

// NewReminderTask schedules a session reminder to fire at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
