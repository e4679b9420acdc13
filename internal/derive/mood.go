package derive

import "math"

// moodPoints maps known response tokens to points on a 1-5 scale.
// Unrecognized tokens contribute 0 points but still count toward the
// denominator, so an all-unknown response map scores 0 rather than
// failing.
var moodPoints = map[string]int{
	"excellent":  5,
	"great":      5,
	"good":       4,
	"okay":       3,
	"struggling": 2,
	"restless":   2,
	"difficult":  1,
	"poor":       1,
}

// MoodScore normalizes a daily check-in's categorical answers to an
// integer in [0,100]. An empty response map yields 0, not an error.
func MoodScore(responses map[string]string) int {
	if len(responses) == 0 {
		return 0
	}

	total := 0
	for _, value := range responses {
		total += moodPoints[value]
	}

	return int(math.Round(float64(total) / float64(len(responses)*5) * 100))
}
