package models

import "time"

// Booking statuses.
const (
	BookingScheduled = "scheduled"
	BookingCompleted = "completed"
)

// Booking is one confirmed session between a booker and a mentor.
// EndTime is always StartTime plus one hour in this system; it is
// stored anyway so queries never re-derive it.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	MentorID      string    `bson:"mentor_id" json:"mentorId"`
	BookerID      string    `bson:"booker_id" json:"bookerId"`
	StartTime     time.Time `bson:"start_time" json:"startTime"`
	EndTime       time.Time `bson:"end_time" json:"endTime"`
	Status        string    `bson:"status" json:"status"` // "scheduled" or "completed"
	PaymentStatus string    `bson:"payment_status" json:"paymentStatus"`
	PaymentRef    string    `bson:"payment_ref" json:"paymentRef"`
	ProjectID     string    `bson:"project_id,omitempty" json:"projectId,omitempty"`
	Title         string    `bson:"title,omitempty" json:"title,omitempty"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	// Set once the external calendar event exists; empty is "no video
	// link available", never an error.
	CalendarEventID string    `bson:"calendar_event_id,omitempty" json:"calendarEventId,omitempty"`
	MeetLink        string    `bson:"meet_link,omitempty" json:"meetLink,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}

// SingleBookingRequest books one explicit slot.
type SingleBookingRequest struct {
	MentorID    string    `json:"mentorId" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	PaymentRef  string    `json:"paymentRef" binding:"required"`
	ProjectID   string    `json:"projectId,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
}

// ProjectBookingRequest purchases a whole multi-session project; the
// session dates are derived, not chosen by the caller.
type ProjectBookingRequest struct {
	MentorID   string    `json:"mentorId" binding:"required"`
	ProjectID  string    `json:"projectId" binding:"required"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	PaymentRef string    `json:"paymentRef" binding:"required"`
	Title      string    `json:"title,omitempty"`
}
