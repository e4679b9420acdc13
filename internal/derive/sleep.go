package derive

import (
	"fmt"
	"math"

	"github.com/factum-app/factum/internal/domain"
)

// cycleMinutes is the length of one sleep cycle.
const cycleMinutes = 90

// WakeOption is one wake-time candidate: the clock time and the number
// of full sleep cycles it allows.
type WakeOption struct {
	Time   string `json:"time"`
	Cycles int    `json:"cycles"`
}

// CycleCount returns the number of 90-minute cycles implied by a target
// sleep duration in hours, rounded to the nearest whole cycle.
func CycleCount(targetHours float64) int {
	return int(math.Round(targetHours * 60 / cycleMinutes))
}

// WakeOptions computes up to three wake-time candidates around the cycle
// count implied by the target duration: one cycle fewer, the target
// itself, and one cycle more. Candidates with a non-positive cycle count
// are discarded. Wake times wrap past midnight as needed.
// Returns ErrInvalidClockTime if bedtime is not HH:MM.
func WakeOptions(bedTime string, targetHours float64) ([]WakeOption, error) {
	bedMinutes, err := parseClockMinutes(bedTime)
	if err != nil {
		return nil, err
	}

	target := CycleCount(targetHours)

	options := make([]WakeOption, 0, 3)
	for cycles := target - 1; cycles <= target+1; cycles++ {
		if cycles <= 0 {
			continue
		}
		wake := (bedMinutes + cycles*cycleMinutes) % (24 * 60)
		options = append(options, WakeOption{
			Time:   fmt.Sprintf("%02d:%02d", wake/60, wake%60),
			Cycles: cycles,
		})
	}

	return options, nil
}

// RecommendedWakeOption picks the default candidate from an ordered
// option list. The choice is positional, not a cycle-count median: when
// the low-end candidate was discarded at the boundary the middle shifts
// accordingly, which is the intended behavior.
func RecommendedWakeOption(options []WakeOption) (WakeOption, bool) {
	if len(options) == 0 {
		return WakeOption{}, false
	}
	return options[len(options)/2], true
}

// SleepQuality maps the absolute difference between actual and target
// sleep duration through ordered thresholds. It is a step function with
// no interpolation between steps.
func SleepQuality(actualHours, targetHours float64) int {
	difference := math.Abs(actualHours - targetHours)
	switch {
	case difference <= 0.5:
		return 100
	case difference <= 1:
		return 80
	case difference <= 2:
		return 60
	case difference <= 3:
		return 40
	default:
		return 20
	}
}

// parseClockMinutes converts an HH:MM clock time to minutes past midnight.
func parseClockMinutes(value string) (int, error) {
	if !domain.ValidClockTime(value) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidClockTime, value)
	}
	var hours, minutes int
	if _, err := fmt.Sscanf(value, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidClockTime, value)
	}
	return hours*60 + minutes, nil
}
