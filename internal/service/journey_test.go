package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factum-app/factum/internal/domain"
)

func TestJourneyCheckIn(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)
	journey := &memJourneyStore{}

	svc := NewJourneyService(journey, fixedClock(day1), testLogger())
	entry, err := svc.CheckIn(context.Background(),
		map[string]string{"win": "slept well"},
		domain.JourneyNotes{Note: "calm evening"})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", entry.Date)
	assert.Equal(t, 1, entry.Day)
	assert.Equal(t, "2025-03-10", journey.state.StartDate)

	// Re-submitting the same day replaces the entry in place.
	replacement, err := svc.CheckIn(context.Background(),
		map[string]string{"win": "second pass"}, domain.JourneyNotes{})
	require.NoError(t, err)
	assert.Equal(t, 1, replacement.Day)
	require.Len(t, journey.state.Entries, 1)
	assert.Equal(t, "second pass", journey.state.Entries[0].Responses["win"])

	// A later day numbers itself from the fixed start date.
	day5 := day1.AddDate(0, 0, 4)
	later := NewJourneyService(journey, fixedClock(day5), testLogger())
	entry, err = later.CheckIn(context.Background(),
		map[string]string{"win": "kept going"}, domain.JourneyNotes{})
	require.NoError(t, err)
	assert.Equal(t, 5, entry.Day)
	assert.Equal(t, "2025-03-10", journey.state.StartDate)
}

func TestJourneyCheckInRequiresResponses(t *testing.T) {
	t.Parallel()

	svc := NewJourneyService(&memJourneyStore{}, nil, testLogger())
	_, err := svc.CheckIn(context.Background(), nil, domain.JourneyNotes{})
	assert.ErrorIs(t, err, ErrEmptyResponses)
}

func TestJourneyStatus(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)
	journey := &memJourneyStore{}

	svc := NewJourneyService(journey, fixedClock(day1), testLogger())

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, status.Day)
	assert.False(t, status.CheckedInToday)
	assert.False(t, status.Complete)

	_, err = svc.CheckIn(context.Background(), map[string]string{"win": "x"}, domain.JourneyNotes{})
	require.NoError(t, err)

	status, err = svc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.CheckedInToday)
	require.Len(t, status.State.Entries, 1)
}

func TestJourneyQuestions(t *testing.T) {
	t.Parallel()

	svc := NewJourneyService(&memJourneyStore{}, nil, testLogger())
	assert.Len(t, svc.Questions(), 5)
}
