package notesRepo

import (
	"bluerobins/models"
)

// NoteRepository defines methods for weekly progress note data access.
type NoteRepository interface {
	// Upsert writes the note keyed by (mentor, student, week start);
	// saving again in the same week overwrites in place.
	Upsert(note *models.ProgressNote) error
	// ListByStudent returns a student's notes, newest week first.
	ListByStudent(studentID string) ([]models.ProgressNote, error)
	// ListByMentor returns a mentor's notes, newest week first.
	ListByMentor(mentorID string) ([]models.ProgressNote, error)
}
