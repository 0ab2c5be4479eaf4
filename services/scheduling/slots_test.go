package scheduling

import (
	"testing"
	"time"

	"bluerobins/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotsExactDivision(t *testing.T) {
	ranges := []models.TimeRange{{Start: "09:00", End: "10:00"}}

	slots := GenerateSlots(ranges, 15)

	require.Len(t, slots, 4)
	assert.Equal(t, "09:00", slots[0].Start)
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start, "slots must be contiguous")
	}
	assert.Equal(t, "10:00", slots[3].End)
}

func TestGenerateSlotsEmptyDay(t *testing.T) {
	assert.Empty(t, GenerateSlots(nil, 15))
	assert.Empty(t, GenerateSlots([]models.TimeRange{}, 15))
}

func TestGenerateSlotsPartialFinalSlot(t *testing.T) {
	ranges := []models.TimeRange{{Start: "09:00", End: "09:50"}}

	slots := GenerateSlots(ranges, 15)

	// The final slot overruns the range end rather than being dropped
	// or truncated.
	require.Len(t, slots, 4)
	assert.Equal(t, models.TimeRange{Start: "09:45", End: "10:00"}, slots[3])
}

func TestGenerateSlotsDefaultInterval(t *testing.T) {
	ranges := []models.TimeRange{{Start: "08:00", End: "09:00"}}

	assert.Len(t, GenerateSlots(ranges, 0), 4)
	assert.Len(t, GenerateSlots(ranges, -5), 4)
}

func TestGenerateSlotsMultipleRangesConcatenated(t *testing.T) {
	ranges := []models.TimeRange{
		{Start: "14:00", End: "14:30"},
		{Start: "09:00", End: "09:30"},
	}

	slots := GenerateSlots(ranges, 30)

	// Input order, no sorting or merging across ranges.
	require.Len(t, slots, 2)
	assert.Equal(t, "14:00", slots[0].Start)
	assert.Equal(t, "09:00", slots[1].Start)
}

func TestGenerateSlotsSkipsMalformedRanges(t *testing.T) {
	ranges := []models.TimeRange{
		{Start: "not-a-time", End: "10:00"},
		{Start: "10:00", End: "10:30"},
	}

	slots := GenerateSlots(ranges, 30)

	require.Len(t, slots, 1)
	assert.Equal(t, "10:00", slots[0].Start)
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func bookingAt(date time.Time, startClock, endClock string) models.Booking {
	parse := func(s string) time.Time {
		c, _ := time.Parse("15:04", s)
		return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, date.Location())
	}
	return models.Booking{StartTime: parse(startClock), EndTime: parse(endClock)}
}

func TestFilterBookedSlotsBoundaryRule(t *testing.T) {
	date := day(t, "2025-06-02")
	slots := []models.TimeRange{
		{Start: "10:00", End: "10:15"},
		{Start: "10:15", End: "10:30"},
		{Start: "10:30", End: "10:45"},
		{Start: "10:45", End: "11:00"},
	}
	bookings := []models.Booking{bookingAt(date, "10:15", "10:30")}

	kept := FilterBookedSlots(slots, date, bookings)

	// The check window is [10:14, 10:30] inclusive on both ends:
	// 10:00-10:15 goes (its end lands at 10:15), 10:15-10:30 goes,
	// and 10:30-10:45 goes too because its start sits exactly on the
	// booking end. Only 10:45-11:00 survives.
	require.Len(t, kept, 1)
	assert.Equal(t, models.TimeRange{Start: "10:45", End: "11:00"}, kept[0])
}

func TestFilterBookedSlotsStraddlePassesThrough(t *testing.T) {
	date := day(t, "2025-06-02")
	slots := []models.TimeRange{{Start: "10:15", End: "10:30"}}
	// A booking strictly inside the slot: neither slot boundary lands
	// in [10:19, 10:25], so the boundary-only rule keeps the slot.
	bookings := []models.Booking{bookingAt(date, "10:20", "10:25")}

	kept := FilterBookedSlots(slots, date, bookings)

	require.Len(t, kept, 1)
}

func TestFilterBookedSlotsNoBookings(t *testing.T) {
	date := day(t, "2025-06-02")
	slots := []models.TimeRange{{Start: "09:00", End: "09:15"}}

	assert.Equal(t, slots, FilterBookedSlots(slots, date, nil))
}
