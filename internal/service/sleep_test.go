package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factum-app/factum/internal/domain"
)

func TestSleepPlan(t *testing.T) {
	t.Parallel()

	sleep := &memSleepStore{}
	svc := NewSleepService(sleep, testLogger())

	result, err := svc.Plan(context.Background(), "23:00", 7.5)
	require.NoError(t, err)

	assert.Equal(t, "23:00", result.Plan.BedTime)
	assert.Equal(t, "06:30", result.Plan.WakeTime)
	assert.Equal(t, 5, result.Plan.Cycles)
	assert.Len(t, result.Options, 3)

	// The plan was persisted as the current one.
	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, result.Plan, *current)
}

func TestSleepPlanRejectsBadInput(t *testing.T) {
	t.Parallel()

	svc := NewSleepService(&memSleepStore{}, testLogger())

	_, err := svc.Plan(context.Background(), "25:61", 8)
	assert.ErrorIs(t, err, domain.ErrInvalidClockTime)

	// A target too small to fit a single cycle cannot produce a plan.
	_, err = svc.Plan(context.Background(), "23:00", 0.1)
	require.Error(t, err)
}

func TestSleepCurrentEmpty(t *testing.T) {
	t.Parallel()

	svc := NewSleepService(&memSleepStore{}, testLogger())
	plan, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestSleepQualityPassthrough(t *testing.T) {
	t.Parallel()

	svc := NewSleepService(&memSleepStore{}, testLogger())
	assert.Equal(t, 100, svc.Quality(8, 8))
	assert.Equal(t, 20, svc.Quality(3, 8))
}
