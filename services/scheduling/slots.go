// Package scheduling holds the pure slot and session-date arithmetic
// behind the booking engine. Nothing in here touches a repository or an
// external API.
package scheduling

import (
	"fmt"
	"time"

	"bluerobins/models"
)

// DefaultSlotInterval is used when a query supplies no interval, or a
// non-positive one.
const DefaultSlotInterval = 15

// parseClock converts an "HH:MM" string to minutes from midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}

// formatClock converts minutes from midnight back to "HH:MM". Values
// past midnight wrap, matching how an overrunning final slot renders.
func formatClock(minutes int) string {
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// onDate anchors an "HH:MM" clock value to a calendar date.
func onDate(date time.Time, clockMinutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		Add(time.Duration(clockMinutes) * time.Minute)
}

// GenerateSlots tiles each availability range left-to-right with
// fixed-width slots. Ranges are processed independently and their slots
// concatenated in input order; nothing is merged or de-duplicated.
//
// When a range's duration is not an exact multiple of the interval, the
// final partial slot is still emitted, with its end past the range end.
// That matches the production behavior this engine replaced; trimming
// it here would silently change what mentors see.
func GenerateSlots(ranges []models.TimeRange, intervalMinutes int) []models.TimeRange {
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultSlotInterval
	}

	var slots []models.TimeRange
	for _, r := range ranges {
		start, err := parseClock(r.Start)
		if err != nil {
			continue
		}
		end, err := parseClock(r.End)
		if err != nil {
			continue
		}
		for cur := start; cur < end; cur += intervalMinutes {
			slots = append(slots, models.TimeRange{
				Start: formatClock(cur),
				End:   formatClock(cur + intervalMinutes),
			})
		}
	}
	return slots
}

// FilterBookedSlots removes candidate slots colliding with existing
// bookings on the given date.
//
// The collision rule checks only the slot's two boundary instants
// against [booking start − 1 minute, booking end], inclusive on both
// ends. A slot that fully straddles a shorter booking, with neither
// endpoint landing inside, passes through unfiltered. Kept as-is:
// bookings are never shorter than the slot interval in this system, and
// the rule is load-bearing for what clients already display.
func FilterBookedSlots(slots []models.TimeRange, date time.Time, bookings []models.Booking) []models.TimeRange {
	if len(bookings) == 0 {
		return slots
	}

	kept := make([]models.TimeRange, 0, len(slots))
	for _, slot := range slots {
		start, err := parseClock(slot.Start)
		if err != nil {
			continue
		}
		end, err := parseClock(slot.End)
		if err != nil {
			continue
		}
		slotStart := onDate(date, start)
		slotEnd := onDate(date, end)

		collides := false
		for _, b := range bookings {
			lo := b.StartTime.Add(-time.Minute)
			hi := b.EndTime
			if instantWithin(slotStart, lo, hi) || instantWithin(slotEnd, lo, hi) {
				collides = true
				break
			}
		}
		if !collides {
			kept = append(kept, slot)
		}
	}
	return kept
}

// instantWithin reports t in [lo, hi], inclusive on both ends.
func instantWithin(t, lo, hi time.Time) bool {
	return !t.Before(lo) && !t.After(hi)
}
