package derive

import (
	"math"
	"time"

	"github.com/factum-app/factum/internal/domain"
)

// JourneyDay numbers today within the 30-day marathon. With no start
// date recorded yet the day is 1. Otherwise the day is the whole-day
// difference between today and the start date plus one, clamped to
// [1,30]: a check-in 45 days after the start still reports day 30, and a
// clock rolled back before the start date never reports less than 1.
func JourneyDay(startDate string, today time.Time) int {
	if startDate == "" {
		return 1
	}

	start, err := domain.ParseDateKey(startDate)
	if err != nil {
		// A corrupt start date behaves like a fresh marathon.
		return 1
	}

	// Round rather than truncate so a DST shift between the two
	// midnights cannot skew the whole-day count.
	day := int(math.Round(midnight(today).Sub(start).Hours()/24)) + 1
	if day < 1 {
		return 1
	}
	if day > domain.JourneyDays {
		return domain.JourneyDays
	}
	return day
}

// midnight truncates t to the start of its local calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
