package domain

import (
	"errors"
	"regexp"
)

// Sleep-specific validation errors
var (
	// ErrTargetSleepRange is returned when a target sleep duration is not
	// a plausible number of hours.
	ErrTargetSleepRange = errors.New("target sleep must be between 1 and 16 hours")

	// ErrCycleCount is returned when a cycle count is not positive.
	ErrCycleCount = errors.New("sleep cycle count must be positive")
)

var clockTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidClockTime reports whether value is a well-formed HH:MM clock time.
func ValidClockTime(value string) bool {
	return clockTimePattern.MatchString(value)
}

// SleepPlan is the persisted sleep schedule: the chosen bedtime, the
// recommended wake time derived from 90-minute cycles, the target
// duration in hours, and the implied cycle count.
type SleepPlan struct {
	BedTime     string  `json:"bedTime"`
	WakeTime    string  `json:"wakeTime"`
	TargetSleep float64 `json:"targetSleep"`
	Cycles      int     `json:"cycles"`
}

// Validate checks if the SleepPlan has valid data.
func (p *SleepPlan) Validate() error {
	if !ValidClockTime(p.BedTime) || !ValidClockTime(p.WakeTime) {
		return ErrInvalidClockTime
	}

	if p.TargetSleep < 1 || p.TargetSleep > 16 {
		return ErrTargetSleepRange
	}

	if p.Cycles <= 0 {
		return ErrCycleCount
	}

	return nil
}
