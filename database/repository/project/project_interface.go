package projectRepo

import (
	"context"

	"bluerobins/models"
)

// ProjectRepository defines methods for project (multi-session package)
// data access.
type ProjectRepository interface {
	// GetByID retrieves one project.
	GetByID(id string) (*models.Project, error)
	// ListByMentor returns a mentor's projects.
	ListByMentor(mentorID string) ([]models.Project, error)
	// List returns all projects.
	List() ([]models.Project, error)
	// Create inserts a new project.
	Create(project *models.Project) error
	// Update overwrites a project's listing fields.
	Update(project *models.Project) error
	// Delete removes a project.
	Delete(id string) error
	// ClaimSpot atomically increments filled_spots when a spot is
	// still available. ErrNoSpots when the pool is full; losing a race
	// for the last spot surfaces as the same error.
	ClaimSpot(ctx context.Context, id string) (*models.Project, error)
	// ReleaseSpot undoes a claim after a failed purchase.
	ReleaseSpot(ctx context.Context, id string) error
}
