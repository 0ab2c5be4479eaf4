package models

import "time"

// Project is a mentor's multi-session package offering: a fixed number
// of sessions spread across a date range, sold up to Spots times.
// FilledSpots never exceeds Spots; the increment happens through a
// single conditional update (see the project repository), so two
// simultaneous purchases cannot both take the last spot.
type Project struct {
	ID          string    `bson:"id" json:"id"`
	MentorID    string    `bson:"mentor_id" json:"mentorId"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Sessions    int       `bson:"sessions" json:"sessions"`
	StartDate   time.Time `bson:"start_date" json:"startDate"`
	EndDate     time.Time `bson:"end_date" json:"endDate"`
	Spots       int       `bson:"spots" json:"spots"`
	FilledSpots int       `bson:"filled_spots" json:"filledSpots"`
	Price       float64   `bson:"price" json:"price"`
	Currency    string    `bson:"currency,omitempty" json:"currency,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProjectInput creates or updates a project listing.
type ProjectInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description,omitempty"`
	Sessions    int       `json:"sessions" binding:"required,min=1"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Spots       int       `json:"spots" binding:"required,min=1"`
	Price       float64   `json:"price" binding:"required"`
	Currency    string    `json:"currency,omitempty"`
}
