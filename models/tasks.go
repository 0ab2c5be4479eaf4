package models

// CalendarSyncPayload asks the background worker to create the external
// calendar event for an already-persisted booking and write the event
// id and join link back onto it.
type CalendarSyncPayload struct {
	BookingID      string   `json:"bookingId"`
	Summary        string   `json:"summary"`
	Description    string   `json:"description,omitempty"`
	AttendeeEmails []string `json:"attendeeEmails,omitempty"`
}

// EmailPayload is a generic outbound email job.
type EmailPayload struct {
	ToName    string `json:"toName"`
	ToEmail   string `json:"toEmail"`
	Subject   string `json:"subject"`
	PlainBody string `json:"plainBody"`
	HTMLBody  string `json:"htmlBody,omitempty"`
}

// ReminderPayload fires shortly before a session starts and emails both
// parties.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	FireDate  string `json:"fireDate"`
}
