package derive

import "github.com/factum-app/factum/internal/domain"

// MatchCompanion scores the user's onboarding responses against each
// question option's per-companion weights and returns the variant with
// the strictly largest total. Ties resolve to the variant that comes
// first in enumeration order: a later equal total never replaces an
// earlier one. With no answered questions every total is zero and the
// first variant wins.
func MatchCompanion(questions []domain.QuizQuestion, responses map[string]string) domain.CompanionType {
	order := domain.CompanionTypes()

	scores := make(map[domain.CompanionType]int, len(order))
	for _, question := range questions {
		value, answered := responses[question.ID]
		if !answered {
			continue
		}
		for _, option := range question.Options {
			if option.Value != value {
				continue
			}
			for variant, weight := range option.Weights {
				scores[variant] += weight
			}
			break
		}
	}

	best := order[0]
	for _, variant := range order[1:] {
		if scores[variant] > scores[best] {
			best = variant
		}
	}

	return best
}
