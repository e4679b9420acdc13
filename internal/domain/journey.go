package domain

import (
	"errors"
	"sort"
)

// JourneyDays is the length of the reflection marathon in calendar days.
const JourneyDays = 30

// Journey-specific validation errors
var (
	// ErrJourneyDayRange is returned when a day number is outside [1,30].
	ErrJourneyDayRange = errors.New("journey day must be between 1 and 30")

	// ErrJourneyNoResponses is returned when an entry answers none of the
	// reflection questions.
	ErrJourneyNoResponses = errors.New("journey entry must answer the reflection questions")
)

// JourneyNotes are the three free-text notes attached to a day's entry.
// Free text is never validated.
type JourneyNotes struct {
	Changes     string `json:"changes"`
	Significant string `json:"significant"`
	Note        string `json:"note"`
}

// Empty reports whether all three notes are blank.
func (n JourneyNotes) Empty() bool {
	return n.Changes == "" && n.Significant == "" && n.Note == ""
}

// JourneyEntry is one day of the 30-day marathon. At most one entry
// exists per calendar date key.
type JourneyEntry struct {
	Date      string            `json:"date"`
	Day       int               `json:"day"`
	Responses map[string]string `json:"responses"`
	Notes     JourneyNotes      `json:"notes"`
}

// Validate checks if the JourneyEntry has valid data.
func (e *JourneyEntry) Validate() error {
	if !ValidDateKey(e.Date) {
		return ErrInvalidDateKey
	}

	if e.Day < 1 || e.Day > JourneyDays {
		return ErrJourneyDayRange
	}

	if len(e.Responses) == 0 {
		return ErrJourneyNoResponses
	}

	return nil
}

// JourneyState is the whole marathon: the start date key plus the entry
// list. StartDate is set when the first entry is recorded and is never
// recomputed from later entries.
type JourneyState struct {
	StartDate string         `json:"startDate,omitempty"`
	Entries   []JourneyEntry `json:"entries"`
}

// Upsert inserts the entry, replacing any existing entry with the same
// date key, and keeps the entry list sorted ascending by date key. The
// start date is fixed to the first entry ever recorded.
func (s *JourneyState) Upsert(entry JourneyEntry) {
	if s.StartDate == "" {
		s.StartDate = entry.Date
	}

	replaced := false
	for i := range s.Entries {
		if s.Entries[i].Date == entry.Date {
			s.Entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		s.Entries = append(s.Entries, entry)
	}

	sort.Slice(s.Entries, func(i, j int) bool {
		return s.Entries[i].Date < s.Entries[j].Date
	})
}

// EntryForDate returns the entry recorded under the date key, if any.
func (s *JourneyState) EntryForDate(date string) (JourneyEntry, bool) {
	for _, entry := range s.Entries {
		if entry.Date == date {
			return entry, true
		}
	}
	return JourneyEntry{}, false
}

// Complete reports whether the marathon has reached its full length.
func (s *JourneyState) Complete() bool {
	return len(s.Entries) >= JourneyDays
}
