package models

// TimeRange is a clock interval on some day, both ends as 24-hour
// "HH:MM" strings. It serves double duty as an availability range in a
// mentor's weekly config and as a generated candidate slot.
type TimeRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// DayAvailability is one day's worth of open slots in a weekly slot
// query response.
type DayAvailability struct {
	DayLabel   string      `json:"dayLabel"`   // e.g. "Monday"
	DayOfMonth int         `json:"dayOfMonth"` // 1..31
	IsToday    bool        `json:"isToday"`
	Slots      []TimeRange `json:"slots"`
}

// SlotQuery asks for a mentor's open slots over the 7 days starting at
// FromDate ("2006-01-02"). IntervalMinutes defaults to 15 when absent
// or non-positive.
type SlotQuery struct {
	MentorID        string `json:"mentorId" binding:"required"`
	FromDate        string `json:"fromDate" binding:"required"`
	IntervalMinutes int    `json:"intervalMinutes"`
}
