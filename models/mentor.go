package models

import "time"

// WeeklyAvailability maps a weekday name ("Monday", ...) to the ordered
// set of bookable ranges for that day. A day with no entry (or an empty
// slice) is unavailable. Ranges are assumed non-overlapping by
// convention; this is not enforced.
type WeeklyAvailability map[string][]TimeRange

// MentorProfile is the public mentor record. ID matches the owning
// user's ID. Availability is upserted in place on every save; no
// history is kept.
type MentorProfile struct {
	ID           string             `bson:"id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Headline     string             `bson:"headline,omitempty" json:"headline,omitempty"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Expertise    []string           `bson:"expertise,omitempty" json:"expertise,omitempty"`
	HourlyRate   float64            `bson:"hourly_rate,omitempty" json:"hourlyRate,omitempty"`
	Currency     string             `bson:"currency,omitempty" json:"currency,omitempty"`
	Availability WeeklyAvailability `bson:"availability,omitempty" json:"availability,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
