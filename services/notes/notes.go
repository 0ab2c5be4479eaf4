package notes

import (
	"errors"
	"fmt"
	"time"

	notesRepo "bluerobins/database/repository/notes"
	userRepo "bluerobins/database/repository/user"
	"bluerobins/models"
	"bluerobins/tasks"
	"bluerobins/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

var (
	ErrMentorsOnly     = utils.NewServiceError("mentorsOnly", "Only mentors can write progress notes")
	ErrStudentNotFound = utils.NewServiceError("studentNotFound", "Student not found")
)

// NoteService manages weekly progress notes. One note per mentor,
// student and week; the week is the Monday the note covers.
type NoteService interface {
	Save(id models.Identity, input models.ProgressNoteInput) (*models.ProgressNote, error)
	ListForStudent(studentID string) ([]models.ProgressNote, error)
	ListForMentor(mentorID string) ([]models.ProgressNote, error)
}

// DefaultNoteService implements NoteService. Saving a note enqueues a
// notification email to the student (and their parent when linked);
// delivery failures never fail the save.
type DefaultNoteService struct {
	NoteRepo notesRepo.NoteRepository
	UserRepo userRepo.UserRepository
	Queue    *asynq.Client
}

// weekStartOf returns the Monday of t's week, formatted "2006-01-02".
func weekStartOf(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format("2006-01-02")
}

// Save upserts this week's note for the given student. Saving twice in
// the same week overwrites the earlier note.
func (s *DefaultNoteService) Save(id models.Identity, input models.ProgressNoteInput) (*models.ProgressNote, error) {
	if id.Role != models.RoleMentor {
		return nil, ErrMentorsOnly
	}
	student, err := s.UserRepo.GetByID(input.StudentID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student %s: %w", input.StudentID, err)
	}

	now := time.Now()
	note := models.ProgressNote{
		ID:         uuid.New().String(),
		MentorID:   id.UserID,
		StudentID:  input.StudentID,
		WeekStart:  weekStartOf(now),
		Summary:    input.Summary,
		Wins:       input.Wins,
		FocusAreas: input.FocusAreas,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.NoteRepo.Upsert(&note); err != nil {
		return nil, fmt.Errorf("failed to save progress note: %w", err)
	}

	s.notify(student, &note)
	return &note, nil
}

func (s *DefaultNoteService) ListForStudent(studentID string) ([]models.ProgressNote, error) {
	return s.NoteRepo.ListByStudent(studentID)
}

func (s *DefaultNoteService) ListForMentor(mentorID string) ([]models.ProgressNote, error) {
	return s.NoteRepo.ListByMentor(mentorID)
}

func (s *DefaultNoteService) notify(student *models.User, note *models.ProgressNote) {
	logger := utils.GetLogger()
	if s.Queue == nil {
		return
	}

	recipients := []models.User{*student}
	if student.ParentID != "" {
		if parent, err := s.UserRepo.GetByID(student.ParentID); err == nil {
			recipients = append(recipients, *parent)
		} else if !errors.Is(err, userRepo.ErrUserNotFound) {
			logger.Warn("failed to load parent for note notification",
				zap.String("parentID", student.ParentID), zap.Error(err))
		}
	}

	body := fmt.Sprintf("Progress update for the week of %s:\n\n%s", note.WeekStart, note.Summary)
	if note.Wins != "" {
		body += "\n\nWins: " + note.Wins
	}
	if note.FocusAreas != "" {
		body += "\n\nFocus areas: " + note.FocusAreas
	}

	for _, rcpt := range recipients {
		task, err := tasks.NewEmailTask(models.EmailPayload{
			ToName:    rcpt.Name,
			ToEmail:   rcpt.Email,
			Subject:   fmt.Sprintf("Weekly progress update (%s)", note.WeekStart),
			PlainBody: body,
		})
		if err != nil {
			logger.Warn("failed to build note email task", zap.Error(err))
			continue
		}
		if _, err := s.Queue.Enqueue(task); err != nil {
			logger.Warn("failed to enqueue note email",
				zap.String("toEmail", rcpt.Email), zap.Error(err))
		}
	}
}
