package scheduling

import "time"

// maxSessionGap caps the spacing between consecutive sessions of a
// project purchase at a weekly cadence.
const maxSessionGap = 7 * 24 * time.Hour

// DistributeSessions spreads count session start times across
// [start, end]: the first at start, the rest evenly spaced by
// (end − start) / (count − 1), capped at 7 days.
//
// When the cap triggers, the sequence keeps the 7-day cadence for every
// subsequent session and is NOT clamped to end, so the last session can
// land past the nominal end date. Deliberate: a purchase always gets
// its full session count at a sane cadence rather than a pile-up in the
// final week.
func DistributeSessions(start, end time.Time, count int) []time.Time {
	if count <= 1 {
		return []time.Time{start}
	}

	gap := end.Sub(start) / time.Duration(count-1)
	if gap > maxSessionGap {
		gap = maxSessionGap
	}

	dates := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, start.Add(time.Duration(i)*gap))
	}
	return dates
}
