package models

import "time"

// ProgressNote is a mentor's weekly write-up for one student. One note
// per (mentor, student, week); saving again in the same week overwrites.
// WeekStart is the Monday of the covered week, "2006-01-02".
type ProgressNote struct {
	ID         string    `bson:"id" json:"id"`
	MentorID   string    `bson:"mentor_id" json:"mentorId"`
	StudentID  string    `bson:"student_id" json:"studentId"`
	WeekStart  string    `bson:"week_start" json:"weekStart"`
	Summary    string    `bson:"summary" json:"summary"`
	Wins       string    `bson:"wins,omitempty" json:"wins,omitempty"`
	FocusAreas string    `bson:"focus_areas,omitempty" json:"focusAreas,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProgressNoteInput is the mentor-facing save payload.
type ProgressNoteInput struct {
	StudentID  string `json:"studentId" binding:"required"`
	Summary    string `json:"summary" binding:"required"`
	Wins       string `json:"wins,omitempty"`
	FocusAreas string `json:"focusAreas,omitempty"`
}
