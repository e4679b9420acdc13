package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name             string
		experience       int
		expectedLevel    int
		expectedProgress float64
	}{
		{
			name:             "zero experience is level one",
			experience:       0,
			expectedLevel:    1,
			expectedProgress: 0,
		},
		{
			name:             "just below a threshold stays on the lower level",
			experience:       99,
			expectedLevel:    1,
			expectedProgress: 99,
		},
		{
			name:             "exact threshold reaches the level",
			experience:       100,
			expectedLevel:    2,
			expectedProgress: 0,
		},
		{
			name:             "halfway between thresholds",
			experience:       200,
			expectedLevel:    2,
			expectedProgress: 50,
		},
		{
			name:             "top level caps progress at one hundred",
			experience:       1500,
			expectedLevel:    6,
			expectedProgress: 100,
		},
		{
			name:             "experience beyond the table stays at the top level",
			experience:       99999,
			expectedLevel:    6,
			expectedProgress: 100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			info := CalculateLevel(tc.experience)
			assert.Equal(t, tc.expectedLevel, info.Level)
			assert.InDelta(t, tc.expectedProgress, info.Progress, 0.001)
			assert.NotEmpty(t, info.Title.EN)
			assert.NotEmpty(t, info.Title.RU)
		})
	}
}

func TestCalculateLevelMonotonic(t *testing.T) {
	t.Parallel()

	prev := CalculateLevel(0).Level
	for exp := 0; exp <= 2000; exp += 25 {
		level := CalculateLevel(exp).Level
		assert.GreaterOrEqual(t, level, prev, "level dropped at experience %d", exp)
		prev = level
	}
}

func TestLevelsTableShape(t *testing.T) {
	t.Parallel()

	rows := Levels()
	require.Len(t, rows, 6)
	assert.Equal(t, 0, rows[0].RequiredExp)

	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i].RequiredExp, rows[i-1].RequiredExp,
			"thresholds must be strictly increasing")
		assert.Equal(t, rows[i-1].Level+1, rows[i].Level)
	}
}

func TestLevelsReturnsCopy(t *testing.T) {
	t.Parallel()

	rows := Levels()
	rows[0].RequiredExp = 12345
	assert.Equal(t, 0, Levels()[0].RequiredExp)
}
