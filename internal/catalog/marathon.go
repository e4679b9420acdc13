package catalog

import "github.com/factum-app/factum/internal/domain"

// ReflectionQuestion is one of the five fixed questions answered on
// every marathon day.
type ReflectionQuestion struct {
	ID   string
	Text domain.LocalizedText
}

var marathonQuestions = []ReflectionQuestion{
	{ID: "win", Text: domain.LocalizedText{EN: "What went well today?", RU: "Что было хорошо сегодня?"}},
	{ID: "hard", Text: domain.LocalizedText{EN: "What was difficult today?", RU: "Что было сложным сегодня?"}},
	{ID: "learn", Text: domain.LocalizedText{EN: "What did you learn about yourself?", RU: "Что вы узнали о себе?"}},
	{ID: "support", Text: domain.LocalizedText{EN: "What helped your mood or focus?", RU: "Что помогло вашему настроению или фокусу?"}},
	{ID: "tomorrow", Text: domain.LocalizedText{EN: "What will you try tomorrow?", RU: "Что вы попробуете завтра?"}},
}

// MarathonQuestions returns the five reflection questions in order.
func MarathonQuestions() []ReflectionQuestion {
	out := make([]ReflectionQuestion, len(marathonQuestions))
	copy(out, marathonQuestions)
	return out
}
