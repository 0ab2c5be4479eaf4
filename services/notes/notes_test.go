package notes

import (
	"testing"
	"time"

	userRepo "bluerobins/database/repository/user"
	"bluerobins/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoteRepo struct {
	saved []models.ProgressNote
}

func (f *fakeNoteRepo) Upsert(n *models.ProgressNote) error {
	for i := range f.saved {
		if f.saved[i].MentorID == n.MentorID && f.saved[i].StudentID == n.StudentID && f.saved[i].WeekStart == n.WeekStart {
			f.saved[i] = *n
			return nil
		}
	}
	f.saved = append(f.saved, *n)
	return nil
}

func (f *fakeNoteRepo) ListByStudent(string) ([]models.ProgressNote, error) { return f.saved, nil }
func (f *fakeNoteRepo) ListByMentor(string) ([]models.ProgressNote, error)  { return f.saved, nil }

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, userRepo.ErrUserNotFound }
func (f *fakeUserRepo) Create(*models.User) error               { return nil }
func (f *fakeUserRepo) Update(*models.User) error               { return nil }
func (f *fakeUserRepo) Delete(string) error                     { return nil }

func TestWeekStartOf(t *testing.T) {
	cases := map[string]string{
		"2025-06-02": "2025-06-02", // Monday maps to itself
		"2025-06-04": "2025-06-02", // Wednesday
		"2025-06-08": "2025-06-02", // Sunday still belongs to Monday's week
		"2025-06-09": "2025-06-09", // next Monday starts a new week
	}
	for in, want := range cases {
		d, err := time.Parse("2006-01-02", in)
		require.NoError(t, err)
		assert.Equal(t, want, weekStartOf(d), "week start for %s", in)
	}
}

func TestSaveRequiresMentorRole(t *testing.T) {
	svc := &DefaultNoteService{
		NoteRepo: &fakeNoteRepo{},
		UserRepo: &fakeUserRepo{users: map[string]*models.User{}},
	}

	_, err := svc.Save(models.Identity{UserID: "u1", Role: models.RoleStudent}, models.ProgressNoteInput{
		StudentID: "s1", Summary: "good week",
	})
	require.ErrorIs(t, err, ErrMentorsOnly)
}

func TestSaveOverwritesSameWeek(t *testing.T) {
	repo := &fakeNoteRepo{}
	svc := &DefaultNoteService{
		NoteRepo: repo,
		UserRepo: &fakeUserRepo{users: map[string]*models.User{
			"s1": {ID: "s1", Name: "Sam", Email: "sam@example.com"},
		}},
	}
	mentor := models.Identity{UserID: "m1", Role: models.RoleMentor}

	_, err := svc.Save(mentor, models.ProgressNoteInput{StudentID: "s1", Summary: "first draft"})
	require.NoError(t, err)
	note, err := svc.Save(mentor, models.ProgressNoteInput{StudentID: "s1", Summary: "final"})
	require.NoError(t, err)

	require.Len(t, repo.saved, 1, "same week saves once")
	assert.Equal(t, "final", repo.saved[0].Summary)
	assert.Equal(t, weekStartOf(time.Now()), note.WeekStart)
}

func TestSaveUnknownStudent(t *testing.T) {
	svc := &DefaultNoteService{
		NoteRepo: &fakeNoteRepo{},
		UserRepo: &fakeUserRepo{users: map[string]*models.User{}},
	}

	_, err := svc.Save(models.Identity{UserID: "m1", Role: models.RoleMentor}, models.ProgressNoteInput{
		StudentID: "ghost", Summary: "n/a",
	})
	require.ErrorIs(t, err, ErrStudentNotFound)
}
