package derive

import "github.com/factum-app/factum/internal/domain"

// LevelRow is one row of the fixed level table.
type LevelRow struct {
	Level       int
	Title       domain.LocalizedText
	RequiredExp int
}

// levelTable is the fixed ascending level progression. Rows are strictly
// increasing in RequiredExp and start at experience 0.
var levelTable = []LevelRow{
	{Level: 1, Title: domain.LocalizedText{EN: "Fog Wanderer", RU: "Странник в тумане"}, RequiredExp: 0},
	{Level: 2, Title: domain.LocalizedText{EN: "Light Seeker", RU: "Искатель света"}, RequiredExp: 100},
	{Level: 3, Title: domain.LocalizedText{EN: "Shard Collector", RU: "Собиратель осколков"}, RequiredExp: 300},
	{Level: 4, Title: domain.LocalizedText{EN: "Balance Keeper", RU: "Хранитель баланса"}, RequiredExp: 600},
	{Level: 5, Title: domain.LocalizedText{EN: "Soul Gardener", RU: "Садовник души"}, RequiredExp: 1000},
	{Level: 6, Title: domain.LocalizedText{EN: "Inner Flame Guardian", RU: "Страж внутреннего пламени"}, RequiredExp: 1500},
}

// Levels returns a copy of the level table in ascending order.
func Levels() []LevelRow {
	out := make([]LevelRow, len(levelTable))
	copy(out, levelTable)
	return out
}

// LevelInfo is the derived view of a user's experience.
type LevelInfo struct {
	Level    int
	Title    domain.LocalizedText
	Progress float64 // percent traveled toward the next level, 100 at the top row
}

// CalculateLevel selects the highest table row whose threshold is at or
// below the given experience and computes the progress percentage toward
// the next row. Behavior for negative experience is undefined by
// contract; callers must not pass negative values.
func CalculateLevel(experience int) LevelInfo {
	current := levelTable[0]
	next := current
	for i := len(levelTable) - 1; i >= 0; i-- {
		if experience >= levelTable[i].RequiredExp {
			current = levelTable[i]
			if i+1 < len(levelTable) {
				next = levelTable[i+1]
			} else {
				next = levelTable[i]
			}
			break
		}
	}

	progress := 100.0
	if next.RequiredExp > current.RequiredExp {
		progress = float64(experience-current.RequiredExp) /
			float64(next.RequiredExp-current.RequiredExp) * 100
		if progress > 100 {
			progress = 100
		}
	}

	return LevelInfo{Level: current.Level, Title: current.Title, Progress: progress}
}
