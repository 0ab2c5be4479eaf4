package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mentorRepo "bluerobins/database/repository/mentor"
	"bluerobins/models"
	"bluerobins/services/scheduling"
	"bluerobins/utils"

	"go.uber.org/zap"
)

// slotCacheTTL bounds the staleness of cached slot query responses.
const slotCacheTTL = 60 * time.Second

// GetWeeklyAvailableSlots computes a mentor's open slots for the 7 days
// starting at fromDate ("2006-01-02"): the weekly availability config
// is tiled into candidate slots per day, then slots colliding with
// existing bookings are dropped.
func (se *DefaultSchedulingEngine) GetWeeklyAvailableSlots(mentorID, fromDate string, intervalMinutes int) (map[string]models.DayAvailability, error) {
	logger := utils.GetLogger()

	if mentorID == "" {
		return nil, ErrMissingMentor
	}
	from, err := time.Parse("2006-01-02", fromDate)
	if err != nil {
		return nil, fmt.Errorf("invalid fromDate %q: %w", fromDate, err)
	}

	cacheKey := fmt.Sprintf("slots:%s:%s:%d", mentorID, fromDate, intervalMinutes)
	if se.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		raw, err := se.Cache.Get(ctx, cacheKey).Result()
		cancel()
		if err == nil {
			var cached map[string]models.DayAvailability
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	profile, err := se.MentorRepo.GetByID(mentorID)
	if err != nil {
		if errors.Is(err, mentorRepo.ErrMentorNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, fmt.Errorf("failed to load mentor %s: %w", mentorID, err)
	}

	to := from.AddDate(0, 0, 7)
	bookings, err := se.BookingRepo.GetByMentorAndRange(mentorID, from, to)
	if err != nil {
		logger.Error("failed to load bookings for slot query",
			zap.String("mentorID", mentorID), zap.Error(err))
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	week := make(map[string]models.DayAvailability, 7)
	for d := 0; d < 7; d++ {
		date := from.AddDate(0, 0, d)
		dateStr := date.Format("2006-01-02")
		dayName := date.Weekday().String()

		candidates := scheduling.GenerateSlots(profile.Availability[dayName], intervalMinutes)
		open := scheduling.FilterBookedSlots(candidates, date, bookings)

		week[dateStr] = models.DayAvailability{
			DayLabel:   dayName,
			DayOfMonth: date.Day(),
			IsToday:    dateStr == today,
			Slots:      open,
		}
	}

	if se.Cache != nil {
		if payload, err := json.Marshal(week); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			if err := se.Cache.Set(ctx, cacheKey, payload, slotCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache slot query", zap.Error(err))
			}
			cancel()
		}
	}
	return week, nil
}
