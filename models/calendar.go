package models

import "time"

// EventRequest describes a calendar event to create, with video
// conferencing enabled.
type EventRequest struct {
	Summary        string    `json:"summary"`
	Description    string    `json:"description,omitempty"`
	Location       string    `json:"location,omitempty"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	AttendeeEmails []string  `json:"attendeeEmails,omitempty"`
}

// CalendarResult is the outcome of a calendar create/update. Success
// with an empty EventID means the integration is not configured;
// callers treat an empty MeetLink as "no video link available".
type CalendarResult struct {
	Success  bool   `json:"success"`
	EventID  string `json:"eventId,omitempty"`
	MeetLink string `json:"meetLink,omitempty"`
	Err      error  `json:"-"`
}
