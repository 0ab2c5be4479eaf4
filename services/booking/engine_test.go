package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "bluerobins/database/repository/booking"
	mentorRepo "bluerobins/database/repository/mentor"
	projectRepo "bluerobins/database/repository/project"
	"bluerobins/models"
	"bluerobins/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeMentorRepo struct {
	profiles map[string]*models.MentorProfile
}

func (f *fakeMentorRepo) GetByID(id string) (*models.MentorProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, mentorRepo.ErrMentorNotFound
	}
	return p, nil
}

func (f *fakeMentorRepo) List() ([]models.MentorProfile, error) { return nil, nil }

func (f *fakeMentorRepo) Upsert(p *models.MentorProfile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeMentorRepo) UpsertAvailability(id string, av models.WeeklyAvailability) error {
	p, ok := f.profiles[id]
	if !ok {
		return mentorRepo.ErrMentorNotFound
	}
	p.Availability = av
	return nil
}

type fakeProjectRepo struct {
	projects map[string]*models.Project
	released int
}

func (f *fakeProjectRepo) GetByID(id string) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, projectRepo.ErrProjectNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) ListByMentor(string) ([]models.Project, error) { return nil, nil }
func (f *fakeProjectRepo) List() ([]models.Project, error)              { return nil, nil }
func (f *fakeProjectRepo) Create(*models.Project) error                 { return nil }
func (f *fakeProjectRepo) Update(*models.Project) error                 { return nil }
func (f *fakeProjectRepo) Delete(string) error                          { return nil }

func (f *fakeProjectRepo) ClaimSpot(_ context.Context, id string) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, projectRepo.ErrProjectNotFound
	}
	if p.FilledSpots >= p.Spots {
		return nil, projectRepo.ErrNoSpots
	}
	p.FilledSpots++
	claimed := *p
	return &claimed, nil
}

func (f *fakeProjectRepo) ReleaseSpot(_ context.Context, id string) error {
	if p, ok := f.projects[id]; ok && p.FilledSpots > 0 {
		p.FilledSpots--
	}
	f.released++
	return nil
}

type fakeBookingRepo struct {
	bookings    []models.Booking
	failBatchAt int // -1 disables the failure injection
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{failBatchAt: -1}
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) CreateBatch(_ context.Context, batch []models.Booking) error {
	if f.failBatchAt >= 0 {
		return &bookingRepo.BatchInsertError{FailedIndex: f.failBatchAt, Cause: errors.New("duplicate key")}
	}
	f.bookings = append(f.bookings, batch...)
	return nil
}

func (f *fakeBookingRepo) GetByMentorAndRange(mentorID string, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.MentorID == mentorID && b.StartTime.Before(to) && b.EndTime.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BookerID == userID || b.MentorID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) SetCalendarEvent(id, eventID, meetLink string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].CalendarEventID = eventID
			f.bookings[i].MeetLink = meetLink
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) SetStatus(id, status string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) UpdateTimes(id string, start, end time.Time) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].StartTime = start
			f.bookings[i].EndTime = end
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

type fakeCalendar struct {
	created []models.EventRequest
	updated []string
	result  models.CalendarResult
}

func (f *fakeCalendar) CreateEvent(_ context.Context, req models.EventRequest) models.CalendarResult {
	f.created = append(f.created, req)
	return f.result
}

func (f *fakeCalendar) UpdateEventTime(_ context.Context, eventID string, _, _ time.Time) models.CalendarResult {
	f.updated = append(f.updated, eventID)
	return f.result
}

// --- helpers ---

func testEngine() (*DefaultSchedulingEngine, *fakeBookingRepo, *fakeProjectRepo, *fakeCalendar) {
	bookings := newFakeBookingRepo()
	projects := &fakeProjectRepo{projects: map[string]*models.Project{}}
	mentors := &fakeMentorRepo{profiles: map[string]*models.MentorProfile{
		"mentor-1": {ID: "mentor-1", Name: "Ada", Email: "ada@example.com"},
	}}
	cal := &fakeCalendar{result: models.CalendarResult{Success: true, EventID: "evt-1", MeetLink: "https://meet.example/abc"}}

	engine := &DefaultSchedulingEngine{
		BookingRepo: bookings,
		MentorRepo:  mentors,
		ProjectRepo: projects,
		Calendar:    cal,
	}
	return engine, bookings, projects, cal
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

var student = models.Identity{UserID: "student-1", Role: models.RoleStudent, Email: "kid@example.com"}

// --- tests ---

func TestBookSlotRejectsMissingMentor(t *testing.T) {
	engine, bookings, _, _ := testEngine()

	_, err := engine.BookSlot(context.Background(), student, models.SingleBookingRequest{
		StartTime:  time.Now(),
		PaymentRef: "pay-1",
	})

	require.ErrorIs(t, err, ErrMissingMentor)
	assert.Empty(t, bookings.bookings, "no row may be written")
}

func TestBookSlotRejectsUnknownMentor(t *testing.T) {
	engine, bookings, _, _ := testEngine()

	_, err := engine.BookSlot(context.Background(), student, models.SingleBookingRequest{
		MentorID:   "ghost",
		StartTime:  time.Now(),
		PaymentRef: "pay-1",
	})

	require.ErrorIs(t, err, ErrMentorNotFound)
	assert.Empty(t, bookings.bookings)
}

func TestBookSlotFixesHourDurationAndAttachesCalendar(t *testing.T) {
	engine, bookings, _, cal := testEngine()
	start := date(t, "2025-06-02").Add(10 * time.Hour)

	booking, err := engine.BookSlot(context.Background(), student, models.SingleBookingRequest{
		MentorID:   "mentor-1",
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute), // ignored
		PaymentRef: "pay-1",
		Title:      "Rocketry kickoff",
	})

	require.NoError(t, err)
	assert.Equal(t, start.Add(time.Hour), booking.EndTime)
	assert.Equal(t, "confirmed", booking.PaymentStatus)
	assert.Equal(t, "evt-1", booking.CalendarEventID)
	assert.Equal(t, "https://meet.example/abc", booking.MeetLink)
	require.Len(t, bookings.bookings, 1)
	require.Len(t, cal.created, 1)
	assert.ElementsMatch(t, []string{"ada@example.com", "kid@example.com"}, cal.created[0].AttendeeEmails)
}

func TestBookProjectRejectsWhenFull(t *testing.T) {
	engine, bookings, projects, _ := testEngine()
	projects.projects["proj-1"] = &models.Project{
		ID: "proj-1", MentorID: "mentor-1", Sessions: 4,
		StartDate: date(t, "2025-06-01"), EndDate: date(t, "2025-06-29"),
		Spots: 1, FilledSpots: 1,
	}

	_, err := engine.BookProject(context.Background(), student, models.ProjectBookingRequest{
		MentorID:   "mentor-1",
		ProjectID:  "proj-1",
		StartDate:  date(t, "2025-06-01"),
		PaymentRef: "pay-1",
	})

	require.ErrorIs(t, err, ErrNoSpots)
	var svcErr *utils.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "No spots available", svcErr.Message)
	assert.Empty(t, bookings.bookings, "no booking row may be written")
}

func TestBookProjectRejectsUnknownProject(t *testing.T) {
	engine, bookings, _, _ := testEngine()

	_, err := engine.BookProject(context.Background(), student, models.ProjectBookingRequest{
		MentorID:   "mentor-1",
		ProjectID:  "ghost",
		StartDate:  date(t, "2025-06-01"),
		PaymentRef: "pay-1",
	})

	require.ErrorIs(t, err, ErrProjectNotFound)
	assert.Empty(t, bookings.bookings)
}

func TestBookProjectDistributesEightSessionsWeekly(t *testing.T) {
	engine, bookings, projects, _ := testEngine()
	// 56 days for 8 sessions: nominal spacing of 8 days exceeds the
	// 7-day cap, so the cadence is weekly.
	projects.projects["proj-1"] = &models.Project{
		ID: "proj-1", MentorID: "mentor-1", Sessions: 8,
		StartDate: date(t, "2025-06-01"), EndDate: date(t, "2025-07-27"),
		Spots: 5, FilledSpots: 0,
	}

	created, err := engine.BookProject(context.Background(), student, models.ProjectBookingRequest{
		MentorID:   "mentor-1",
		ProjectID:  "proj-1",
		StartDate:  date(t, "2025-06-01"),
		PaymentRef: "pay-xyz",
	})

	require.NoError(t, err)
	require.Len(t, created, 8)
	require.Len(t, bookings.bookings, 8)

	assert.Equal(t, date(t, "2025-06-01"), created[0].StartTime)
	for i, b := range created {
		assert.Equal(t, b.StartTime.Add(time.Hour), b.EndTime)
		assert.Equal(t, "confirmed", b.PaymentStatus)
		assert.Equal(t, "pay-xyz", b.PaymentRef)
		assert.Equal(t, "proj-1", b.ProjectID)
		if i > 0 {
			assert.Equal(t, 7*24*time.Hour, b.StartTime.Sub(created[i-1].StartTime))
		}
	}

	// One spot per purchase, not one per session.
	assert.Equal(t, 1, projects.projects["proj-1"].FilledSpots)
}

func TestBookProjectBatchFailureReleasesSpot(t *testing.T) {
	engine, bookings, projects, _ := testEngine()
	bookings.failBatchAt = 2
	projects.projects["proj-1"] = &models.Project{
		ID: "proj-1", MentorID: "mentor-1", Sessions: 4,
		StartDate: date(t, "2025-06-01"), EndDate: date(t, "2025-06-22"),
		Spots: 3, FilledSpots: 0,
	}

	_, err := engine.BookProject(context.Background(), student, models.ProjectBookingRequest{
		MentorID:   "mentor-1",
		ProjectID:  "proj-1",
		StartDate:  date(t, "2025-06-01"),
		PaymentRef: "pay-1",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "session 3")
	assert.Equal(t, 0, projects.projects["proj-1"].FilledSpots, "claimed spot must be released")
	assert.Equal(t, 1, projects.released)
	assert.Empty(t, bookings.bookings)
}

func TestGetWeeklyAvailableSlots(t *testing.T) {
	engine, bookings, _, _ := testEngine()
	engine.MentorRepo.(*fakeMentorRepo).profiles["mentor-1"].Availability = models.WeeklyAvailability{
		"Monday": {{Start: "09:00", End: "10:00"}},
	}
	monday := date(t, "2025-06-02") // a Monday
	bookings.bookings = append(bookings.bookings, models.Booking{
		ID:       "b-1",
		MentorID: "mentor-1",
		// Collides with both candidate slots under the boundary rule.
		StartTime: monday.Add(9*time.Hour + 30*time.Minute),
		EndTime:   monday.Add(10*time.Hour + 30*time.Minute),
	})

	week, err := engine.GetWeeklyAvailableSlots("mentor-1", "2025-06-02", 30)

	require.NoError(t, err)
	require.Len(t, week, 7)

	mondaySlots := week["2025-06-02"]
	assert.Equal(t, "Monday", mondaySlots.DayLabel)
	assert.Equal(t, 2, mondaySlots.DayOfMonth)
	assert.Empty(t, mondaySlots.Slots, "both 30-minute slots collide with the booking")

	tuesday := week["2025-06-03"]
	assert.Equal(t, "Tuesday", tuesday.DayLabel)
	assert.Empty(t, tuesday.Slots, "no availability configured for Tuesday")
}

func TestGetWeeklyAvailableSlotsOpenWeek(t *testing.T) {
	engine, _, _, _ := testEngine()
	engine.MentorRepo.(*fakeMentorRepo).profiles["mentor-1"].Availability = models.WeeklyAvailability{
		"Monday": {{Start: "09:00", End: "10:00"}},
	}

	week, err := engine.GetWeeklyAvailableSlots("mentor-1", "2025-06-02", 30)

	require.NoError(t, err)
	assert.Len(t, week["2025-06-02"].Slots, 2)
}

func TestCompleteBookingAuthorization(t *testing.T) {
	engine, bookings, _, _ := testEngine()
	bookings.bookings = append(bookings.bookings, models.Booking{
		ID: "b-1", MentorID: "mentor-1", BookerID: "student-1", Status: models.BookingScheduled,
	})

	err := engine.CompleteBooking(student, "b-1")
	require.ErrorIs(t, err, ErrNotAllowed)

	mentor := models.Identity{UserID: "mentor-1", Role: models.RoleMentor}
	require.NoError(t, engine.CompleteBooking(mentor, "b-1"))
	assert.Equal(t, models.BookingCompleted, bookings.bookings[0].Status)
}

func TestRescheduleBookingMovesCalendarEvent(t *testing.T) {
	engine, bookings, _, cal := testEngine()
	start := date(t, "2025-06-02").Add(9 * time.Hour)
	bookings.bookings = append(bookings.bookings, models.Booking{
		ID: "b-1", MentorID: "mentor-1", BookerID: "student-1",
		StartTime: start, EndTime: start.Add(time.Hour),
		CalendarEventID: "evt-9",
	})

	newStart := start.AddDate(0, 0, 1)
	moved, err := engine.RescheduleBooking(context.Background(), student, "b-1", newStart)

	require.NoError(t, err)
	assert.Equal(t, newStart, moved.StartTime)
	assert.Equal(t, newStart.Add(time.Hour), moved.EndTime)
	assert.Equal(t, []string{"evt-9"}, cal.updated)
}
