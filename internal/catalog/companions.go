package catalog

import "github.com/factum-app/factum/internal/domain"

// companions is the fixed persona catalog in enumeration order.
var companions = []domain.Companion{
	{
		ID:          "luna",
		Name:        "Luna",
		Type:        domain.CompanionLuna,
		Description: "Gentle companion for night anxiety and emotional sensitivity",
		Color:       "from-zinc-900 to-zinc-700",
		Image:       "/avatars/luna.png",
		Traits:      []string{"night anxiety", "emotional sensitivity", "overthinking", "sleep issues"},
	},
	{
		ID:          "sunny",
		Name:        "Sunny",
		Type:        domain.CompanionSunny,
		Description: "Warm guide through light depression and low motivation",
		Color:       "from-stone-900 to-stone-700",
		Image:       "/avatars/sunny.png",
		Traits:      []string{"light depression", "apathy", "low motivation", "seasonal sadness"},
	},
	{
		ID:          "sage",
		Name:        "Sage",
		Type:        domain.CompanionSage,
		Description: "Wise mentor for self-esteem and social confidence",
		Color:       "from-slate-900 to-slate-700",
		Image:       "/avatars/sage.png",
		Traits:      []string{"low self-esteem", "chronic self-doubt", "social anxiety", "imposter syndrome"},
	},
	{
		ID:          "spark",
		Name:        "Spark",
		Type:        domain.CompanionSpark,
		Description: "Energetic coach for motivation and focus",
		Color:       "from-neutral-900 to-neutral-700",
		Image:       "/avatars/spark.png",
		Traits:      []string{"apathy", "procrastination", "executive dysfunction", "lack of focus"},
	},
	{
		ID:          "haven",
		Name:        "Haven",
		Type:        domain.CompanionHaven,
		Description: "Safe space for trauma recovery and social healing",
		Color:       "from-gray-900 to-gray-700",
		Image:       "/avatars/haven.png",
		Traits:      []string{"social anxiety", "attachment issues", "trauma", "burnout"},
	},
}

// Companions returns the persona catalog in enumeration order.
func Companions() []domain.Companion {
	out := make([]domain.Companion, len(companions))
	copy(out, companions)
	return out
}

// CompanionByType looks up a catalog entry by variant. Returns the first
// catalog entry when the variant is unknown, so callers always get a
// usable persona.
func CompanionByType(t domain.CompanionType) domain.Companion {
	for _, c := range companions {
		if c.Type == t {
			return c
		}
	}
	return companions[0]
}
