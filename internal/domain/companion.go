package domain

// CompanionType identifies one of the five fixed companion personas.
type CompanionType string

// The five companion variants. Declaration order is the canonical
// enumeration order: the matching algorithm resolves score ties in favor
// of the earlier variant, so reordering this list changes which persona
// users are assigned.
const (
	CompanionLuna  CompanionType = "Luna"
	CompanionSunny CompanionType = "Sunny"
	CompanionSage  CompanionType = "Sage"
	CompanionSpark CompanionType = "Spark"
	CompanionHaven CompanionType = "Haven"
)

// CompanionTypes returns all companion variants in enumeration order.
func CompanionTypes() []CompanionType {
	return []CompanionType{
		CompanionLuna,
		CompanionSunny,
		CompanionSage,
		CompanionSpark,
		CompanionHaven,
	}
}

// Valid reports whether the type is one of the five fixed variants.
func (t CompanionType) Valid() bool {
	for _, known := range CompanionTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Companion is one of the five fixed personas a user can be matched to.
// The catalog of companions is static, read-only state loaded once at
// startup; a user's matched companion is a snapshot of a catalog entry.
type Companion struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Type        CompanionType `json:"type"`
	Description string        `json:"description"`
	Color       string        `json:"color"`
	Image       string        `json:"image"`
	Traits      []string      `json:"traits"`
}
