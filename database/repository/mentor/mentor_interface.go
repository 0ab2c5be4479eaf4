package mentorRepo

import (
	"bluerobins/models"
)

// MentorRepository defines methods for mentor profile data access.
type MentorRepository interface {
	// GetByID retrieves a mentor profile by the owning user's ID.
	GetByID(id string) (*models.MentorProfile, error)
	// List retrieves all mentor profiles.
	List() ([]models.MentorProfile, error)
	// Upsert creates the profile on first save and overwrites it afterwards.
	Upsert(profile *models.MentorProfile) error
	// UpsertAvailability overwrites the weekly availability config in
	// place. No history is kept.
	UpsertAvailability(mentorID string, availability models.WeeklyAvailability) error
}
