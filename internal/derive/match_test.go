package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/factum-app/factum/internal/catalog"
	"github.com/factum-app/factum/internal/domain"
)

// matchQuestion builds a single-question quiz whose one option carries
// the given weights.
func matchQuestion(id, value string, weights map[domain.CompanionType]int) domain.QuizQuestion {
	return domain.QuizQuestion{
		ID: id,
		Options: []domain.QuizOption{
			{Value: value, Weights: weights},
		},
	}
}

func TestMatchCompanion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		questions []domain.QuizQuestion
		responses map[string]string
		expected  domain.CompanionType
	}{
		{
			name: "clear winner takes the match",
			questions: []domain.QuizQuestion{
				matchQuestion("q1", "a", map[domain.CompanionType]int{
					domain.CompanionSpark: 3,
					domain.CompanionLuna:  1,
				}),
			},
			responses: map[string]string{"q1": "a"},
			expected:  domain.CompanionSpark,
		},
		{
			name: "tie resolves to the earlier variant in enumeration order",
			questions: []domain.QuizQuestion{
				matchQuestion("q1", "a", map[domain.CompanionType]int{
					domain.CompanionSunny: 2,
					domain.CompanionHaven: 2,
				}),
			},
			responses: map[string]string{"q1": "a"},
			expected:  domain.CompanionSunny,
		},
		{
			name: "later equal total never replaces an earlier one",
			questions: []domain.QuizQuestion{
				matchQuestion("q1", "a", map[domain.CompanionType]int{
					domain.CompanionLuna:  2,
					domain.CompanionSpark: 2,
				}),
			},
			responses: map[string]string{"q1": "a"},
			expected:  domain.CompanionLuna,
		},
		{
			name:      "no answers falls back to the first variant",
			questions: []domain.QuizQuestion{matchQuestion("q1", "a", nil)},
			responses: map[string]string{},
			expected:  domain.CompanionLuna,
		},
		{
			name: "unanswered questions are skipped",
			questions: []domain.QuizQuestion{
				matchQuestion("q1", "a", map[domain.CompanionType]int{domain.CompanionHaven: 5}),
				matchQuestion("q2", "b", map[domain.CompanionType]int{domain.CompanionSage: 1}),
			},
			responses: map[string]string{"q2": "b"},
			expected:  domain.CompanionSage,
		},
		{
			name: "response value must match an option",
			questions: []domain.QuizQuestion{
				matchQuestion("q1", "a", map[domain.CompanionType]int{domain.CompanionHaven: 5}),
			},
			responses: map[string]string{"q1": "nonsense"},
			expected:  domain.CompanionLuna,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, MatchCompanion(tc.questions, tc.responses))
		})
	}
}

func TestMatchCompanionAgainstCatalog(t *testing.T) {
	t.Parallel()

	questions := catalog.MatchingQuiz()

	// Answering every question with its first option must produce a
	// valid variant, whatever the weights say.
	responses := make(map[string]string, len(questions))
	for _, q := range questions {
		responses[q.ID] = q.Options[0].Value
	}

	matched := MatchCompanion(questions, responses)
	assert.True(t, matched.Valid())
}
