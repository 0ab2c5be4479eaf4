// Package calendar wraps the Google Calendar API behind the narrow
// surface the booking engine needs: create an event with a Meet link,
// or move an existing event.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bluerobins/config"
	"bluerobins/models"
	"bluerobins/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// maxQuotaRetries bounds how many times a quota-limited call is retried
// after the initial attempt. With the 2s base delay and doubling, a
// fully exhausted retry cycle waits 2+4+8+16+32 seconds.
const (
	maxQuotaRetries   = 5
	defaultRetryDelay = 2 * time.Second
)

// EventClient creates and updates external calendar events.
type EventClient interface {
	CreateEvent(ctx context.Context, req models.EventRequest) models.CalendarResult
	UpdateEventTime(ctx context.Context, eventID string, start, end time.Time) models.CalendarResult
}

// GoogleEventClient implements EventClient against the Google Calendar
// API. With no credentials configured it runs degraded: every call
// reports success with an empty event id, so bookings never hard-depend
// on the integration being set up.
type GoogleEventClient struct {
	svc        *gcal.Service
	calendarID string
	baseDelay  time.Duration
	sleep      func(time.Duration)
	logger     *zap.Logger
}

// NewGoogleEventClient builds the client from AppConfig.
func NewGoogleEventClient(ctx context.Context) (*GoogleEventClient, error) {
	logger := utils.GetLogger()
	client := &GoogleEventClient{
		calendarID: config.AppConfig.GoogleCalendarID,
		baseDelay:  defaultRetryDelay,
		sleep:      time.Sleep,
		logger:     logger,
	}

	credsFile := config.AppConfig.GoogleCredentialsFile
	if credsFile == "" {
		logger.Warn("calendar credentials not configured, running in degraded mode")
		return client, nil
	}

	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize calendar service: %w", err)
	}
	client.svc = svc
	return client, nil
}

// CreateEvent creates an event with video conferencing enabled.
func (c *GoogleEventClient) CreateEvent(ctx context.Context, req models.EventRequest) models.CalendarResult {
	if c.svc == nil {
		return models.CalendarResult{Success: true}
	}

	event := &gcal.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start: &gcal.EventDateTime{
			DateTime: req.Start.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: req.End.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId: uuid.New().String(),
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}
	for _, email := range req.AttendeeEmails {
		event.Attendees = append(event.Attendees, &gcal.EventAttendee{Email: email})
	}

	var created *gcal.Event
	err := c.retryOnQuota(func() error {
		var callErr error
		created, callErr = c.svc.Events.Insert(c.calendarID, event).
			ConferenceDataVersion(1).
			Context(ctx).
			Do()
		return callErr
	})
	if err != nil {
		c.logger.Error("failed to create calendar event",
			zap.String("summary", req.Summary), zap.Error(err))
		return models.CalendarResult{Err: err}
	}

	return models.CalendarResult{
		Success:  true,
		EventID:  created.Id,
		MeetLink: meetLink(created),
	}
}

// UpdateEventTime moves an existing event's start and end.
func (c *GoogleEventClient) UpdateEventTime(ctx context.Context, eventID string, start, end time.Time) models.CalendarResult {
	if c.svc == nil {
		return models.CalendarResult{Success: true}
	}

	patch := &gcal.Event{
		Start: &gcal.EventDateTime{
			DateTime: start.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: end.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}

	var updated *gcal.Event
	err := c.retryOnQuota(func() error {
		var callErr error
		updated, callErr = c.svc.Events.Patch(c.calendarID, eventID, patch).
			Context(ctx).
			Do()
		return callErr
	})
	if err != nil {
		c.logger.Error("failed to update calendar event",
			zap.String("eventID", eventID), zap.Error(err))
		return models.CalendarResult{Err: err}
	}

	return models.CalendarResult{
		Success:  true,
		EventID:  updated.Id,
		MeetLink: meetLink(updated),
	}
}

// retryOnQuota runs call, retrying only quota-exceeded failures with an
// exponentially doubling delay. Any other error propagates immediately.
func (c *GoogleEventClient) retryOnQuota(call func() error) error {
	delay := c.baseDelay
	var err error
	for attempt := 0; ; attempt++ {
		err = call()
		if err == nil {
			return nil
		}
		if !isQuotaError(err) || attempt >= maxQuotaRetries {
			return err
		}
		c.logger.Warn("calendar quota exceeded, backing off",
			zap.Int("attempt", attempt+1), zap.Duration("delay", delay))
		c.sleep(delay)
		delay *= 2
	}
}

// isQuotaError reports whether err has the shape of a quota-exceeded
// response from the calendar API.
func isQuotaError(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == 429 {
		return true
	}
	if apiErr.Code != 403 {
		return false
	}
	for _, item := range apiErr.Errors {
		switch item.Reason {
		case "rateLimitExceeded", "userRateLimitExceeded", "quotaExceeded", "dailyLimitExceeded":
			return true
		}
	}
	return false
}

// meetLink pulls the video join link off an event, preferring the
// hangout link, then any video entry point. Empty means no link.
func meetLink(event *gcal.Event) string {
	if event.HangoutLink != "" {
		return event.HangoutLink
	}
	if event.ConferenceData == nil {
		return ""
	}
	for _, ep := range event.ConferenceData.EntryPoints {
		if ep.EntryPointType == "video" {
			return ep.Uri
		}
	}
	return ""
}
