package domain

// Difficulty grades a challenge.
type Difficulty string

// Challenge difficulties.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Challenge is a catalog task tied to a companion variant. Completing a
// challenge awards its experience once; completion is recorded on the
// user's completed-challenge set, not on the catalog entry.
type Challenge struct {
	ID            string        `json:"id"`
	CompanionType CompanionType `json:"avatarType"`
	Title         LocalizedText `json:"title"`
	Description   LocalizedText `json:"description"`
	Difficulty    Difficulty    `json:"difficulty"`
	Experience    int           `json:"experience"`
}
