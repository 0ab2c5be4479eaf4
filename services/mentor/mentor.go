package mentor

import (
	"errors"
	"fmt"
	"time"

	mentorRepo "bluerobins/database/repository/mentor"
	projectRepo "bluerobins/database/repository/project"
	"bluerobins/models"
	"bluerobins/utils"

	"github.com/google/uuid"
)

var (
	ErrMentorNotFound  = utils.NewServiceError("mentorNotFound", "Mentor not found")
	ErrProjectNotFound = utils.NewServiceError("projectNotFound", "Project not found")
	ErrNotOwner        = utils.NewServiceError("notOwner", "You do not own this listing")
	ErrBadDateRange    = utils.NewServiceError("badDateRange", "End date must be after start date")
)

// MentorService manages mentor profiles, weekly availability and
// project listings.
type MentorService interface {
	GetProfile(mentorID string) (*models.MentorProfile, error)
	ListMentors() ([]models.MentorProfile, error)
	SaveProfile(id models.Identity, profile models.MentorProfile) (*models.MentorProfile, error)
	SaveAvailability(id models.Identity, availability models.WeeklyAvailability) error
	CreateProject(id models.Identity, input models.ProjectInput) (*models.Project, error)
	UpdateProject(id models.Identity, projectID string, input models.ProjectInput) (*models.Project, error)
	DeleteProject(id models.Identity, projectID string) error
	ListProjects(mentorID string) ([]models.Project, error)
	ListAllProjects() ([]models.Project, error)
}

// DefaultMentorService implements MentorService.
type DefaultMentorService struct {
	MentorRepo  mentorRepo.MentorRepository
	ProjectRepo projectRepo.ProjectRepository
}

func (s *DefaultMentorService) GetProfile(mentorID string) (*models.MentorProfile, error) {
	profile, err := s.MentorRepo.GetByID(mentorID)
	if err != nil {
		if errors.Is(err, mentorRepo.ErrMentorNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, fmt.Errorf("failed to load mentor %s: %w", mentorID, err)
	}
	return profile, nil
}

func (s *DefaultMentorService) ListMentors() ([]models.MentorProfile, error) {
	return s.MentorRepo.List()
}

// SaveProfile upserts the caller's own mentor profile. The profile id
// is always the caller's user id; a client-sent id is ignored.
func (s *DefaultMentorService) SaveProfile(id models.Identity, profile models.MentorProfile) (*models.MentorProfile, error) {
	profile.ID = id.UserID
	if profile.Email == "" {
		profile.Email = id.Email
	}
	profile.UpdatedAt = time.Now()
	if err := s.MentorRepo.Upsert(&profile); err != nil {
		return nil, fmt.Errorf("failed to save mentor profile: %w", err)
	}
	return &profile, nil
}

// SaveAvailability replaces the caller's weekly availability in place.
func (s *DefaultMentorService) SaveAvailability(id models.Identity, availability models.WeeklyAvailability) error {
	if err := s.MentorRepo.UpsertAvailability(id.UserID, availability); err != nil {
		if errors.Is(err, mentorRepo.ErrMentorNotFound) {
			return ErrMentorNotFound
		}
		return fmt.Errorf("failed to save availability: %w", err)
	}
	return nil
}

func (s *DefaultMentorService) CreateProject(id models.Identity, input models.ProjectInput) (*models.Project, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, ErrBadDateRange
	}
	now := time.Now()
	project := models.Project{
		ID:          uuid.New().String(),
		MentorID:    id.UserID,
		Title:       input.Title,
		Description: input.Description,
		Sessions:    input.Sessions,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Spots:       input.Spots,
		Price:       input.Price,
		Currency:    input.Currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.ProjectRepo.Create(&project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

// UpdateProject overwrites a listing's fields. Capacity already sold is
// protected: spots can never drop below the current filled count.
func (s *DefaultMentorService) UpdateProject(id models.Identity, projectID string, input models.ProjectInput) (*models.Project, error) {
	project, err := s.ownedProject(id, projectID)
	if err != nil {
		return nil, err
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, ErrBadDateRange
	}

	project.Title = input.Title
	project.Description = input.Description
	project.Sessions = input.Sessions
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate
	project.Spots = input.Spots
	if project.Spots < project.FilledSpots {
		project.Spots = project.FilledSpots
	}
	project.Price = input.Price
	project.Currency = input.Currency
	project.UpdatedAt = time.Now()

	if err := s.ProjectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project %s: %w", projectID, err)
	}
	return project, nil
}

func (s *DefaultMentorService) DeleteProject(id models.Identity, projectID string) error {
	if _, err := s.ownedProject(id, projectID); err != nil {
		return err
	}
	if err := s.ProjectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	return nil
}

func (s *DefaultMentorService) ListProjects(mentorID string) ([]models.Project, error) {
	return s.ProjectRepo.ListByMentor(mentorID)
}

func (s *DefaultMentorService) ListAllProjects() ([]models.Project, error) {
	return s.ProjectRepo.List()
}

func (s *DefaultMentorService) ownedProject(id models.Identity, projectID string) (*models.Project, error) {
	project, err := s.ProjectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, projectRepo.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project %s: %w", projectID, err)
	}
	if project.MentorID != id.UserID {
		return nil, ErrNotOwner
	}
	return project, nil
}
