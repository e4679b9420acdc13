package catalog

import "github.com/factum-app/factum/internal/domain"

// weights is shorthand for a per-companion weight map in enumeration order.
func weights(luna, sunny, sage, spark, haven int) map[domain.CompanionType]int {
	return map[domain.CompanionType]int{
		domain.CompanionLuna:  luna,
		domain.CompanionSunny: sunny,
		domain.CompanionSage:  sage,
		domain.CompanionSpark: spark,
		domain.CompanionHaven: haven,
	}
}

// matchingQuiz is the onboarding questionnaire whose weighted options
// drive companion matching.
var matchingQuiz = []domain.QuizQuestion{
	{
		ID: "mood_evening",
		Text: domain.LocalizedText{
			EN: "How do you typically feel in the evening?",
			RU: "Как вы обычно чувствуете себя вечером?",
		},
		Options: []domain.QuizOption{
			{
				Text:    domain.LocalizedText{EN: "Anxious and overthinking", RU: "Тревожно и много думаю"},
				Value:   "anxious",
				Weights: weights(3, 1, 2, 1, 2),
			},
			{
				Text:    domain.LocalizedText{EN: "Tired and unmotivated", RU: "Устал и без мотивации"},
				Value:   "tired",
				Weights: weights(1, 3, 1, 2, 2),
			},
			{
				Text:    domain.LocalizedText{EN: "Restless and unfocused", RU: "Беспокойно и рассеянно"},
				Value:   "restless",
				Weights: weights(2, 1, 1, 3, 1),
			},
			{
				Text:    domain.LocalizedText{EN: "Peaceful and content", RU: "Спокойно и довольно"},
				Value:   "peaceful",
				Weights: weights(1, 2, 2, 1, 1),
			},
		},
	},
	{
		ID: "social_interaction",
		Text: domain.LocalizedText{
			EN: "How do you feel about social interactions?",
			RU: "Как вы относитесь к социальным взаимодействиям?",
		},
		Options: []domain.QuizOption{
			{
				Text:    domain.LocalizedText{EN: "Draining and overwhelming", RU: "Истощающе и подавляюще"},
				Value:   "draining",
				Weights: weights(2, 1, 3, 1, 3),
			},
			{
				Text:    domain.LocalizedText{EN: "Enjoyable but rare", RU: "Приятно, но редко"},
				Value:   "rare",
				Weights: weights(1, 3, 2, 2, 2),
			},
			{
				Text:    domain.LocalizedText{EN: "Energizing when focused", RU: "Заряжающе, когда сфокусирован"},
				Value:   "energizing",
				Weights: weights(1, 2, 1, 3, 1),
			},
			{
				Text:    domain.LocalizedText{EN: "Natural and comfortable", RU: "Естественно и комфортно"},
				Value:   "natural",
				Weights: weights(1, 2, 1, 2, 1),
			},
		},
	},
	{
		ID: "self_perception",
		Text: domain.LocalizedText{
			EN: "How do you typically view yourself?",
			RU: "Как вы обычно воспринимаете себя?",
		},
		Options: []domain.QuizOption{
			{
				Text:    domain.LocalizedText{EN: "Too sensitive and emotional", RU: "Слишком чувствительный и эмоциональный"},
				Value:   "sensitive",
				Weights: weights(3, 1, 2, 1, 2),
			},
			{
				Text:    domain.LocalizedText{EN: "Lacking motivation and purpose", RU: "Не хватает мотивации и цели"},
				Value:   "unmotivated",
				Weights: weights(1, 3, 2, 2, 1),
			},
			{
				Text:    domain.LocalizedText{EN: "Not good enough compared to others", RU: "Недостаточно хорош по сравнению с другими"},
				Value:   "inadequate",
				Weights: weights(1, 2, 3, 1, 2),
			},
			{
				Text:    domain.LocalizedText{EN: "Struggling with focus and consistency", RU: "Борюсь с фокусом и последовательностью"},
				Value:   "unfocused",
				Weights: weights(2, 2, 1, 3, 1),
			},
			{
				Text:    domain.LocalizedText{EN: "Overwhelmed by past experiences", RU: "Подавлен прошлым опытом"},
				Value:   "overwhelmed",
				Weights: weights(2, 1, 2, 1, 3),
			},
		},
	},
	{
		ID: "energy_patterns",
		Text: domain.LocalizedText{
			EN: "When do you feel most energetic?",
			RU: "Когда вы чувствуете себя наиболее энергичным?",
		},
		Options: []domain.QuizOption{
			{
				Text:    domain.LocalizedText{EN: "Late at night when alone", RU: "Поздно ночью, когда один"},
				Value:   "night",
				Weights: weights(3, 1, 1, 2, 1),
			},
			{
				Text:    domain.LocalizedText{EN: "Rarely feel energetic", RU: "Редко чувствую себя энергичным"},
				Value:   "rarely",
				Weights: weights(1, 3, 1, 1, 2),
			},
			{
				Text:    domain.LocalizedText{EN: "In bursts, unpredictably", RU: "Вспышками, непредсказуемо"},
				Value:   "bursts",
				Weights: weights(2, 2, 1, 3, 1),
			},
			{
				Text:    domain.LocalizedText{EN: "In safe, comfortable environments", RU: "В безопасной, комфортной обстановке"},
				Value:   "safe",
				Weights: weights(1, 2, 2, 1, 3),
			},
		},
	},
	{
		ID: "coping_mechanisms",
		Text: domain.LocalizedText{
			EN: "How do you typically handle stress?",
			RU: "Как вы обычно справляетесь со стрессом?",
		},
		Options: []domain.QuizOption{
			{
				Text:    domain.LocalizedText{EN: "Overthink and worry at night", RU: "Много думаю и беспокоюсь ночью"},
				Value:   "overthink",
				Weights: weights(3, 1, 2, 1, 1),
			},
			{
				Text:    domain.LocalizedText{EN: "Withdraw and sleep more", RU: "Замыкаюсь и больше сплю"},
				Value:   "withdraw",
				Weights: weights(1, 3, 1, 1, 2),
			},
			{
				Text:    domain.LocalizedText{EN: "Doubt myself and avoid challenges", RU: "Сомневаюсь в себе и избегаю вызовов"},
				Value:   "doubt",
				Weights: weights(1, 2, 3, 1, 2),
			},
			{
				Text:    domain.LocalizedText{EN: "Procrastinate and feel scattered", RU: "Прокрастинирую и чувствую себя разбросанным"},
				Value:   "procrastinate",
				Weights: weights(1, 2, 1, 3, 1),
			},
			{
				Text:    domain.LocalizedText{EN: "Isolate and feel overwhelmed", RU: "Изолируюсь и чувствую себя подавленным"},
				Value:   "isolate",
				Weights: weights(2, 1, 2, 1, 3),
			},
		},
	},
}

// dailyQuiz is the daily check-in questionnaire. Its options carry
// uniform weights because the matcher never consults them; only the
// value tokens matter, for mood scoring.
var dailyQuiz = []domain.QuizQuestion{
	{
		ID: "daily_mood",
		Text: domain.LocalizedText{
			EN: "How are you feeling today?",
			RU: "Как вы себя чувствуете сегодня?",
		},
		Options: []domain.QuizOption{
			{Text: domain.LocalizedText{EN: "Great! Full of energy", RU: "Отлично! Полон энергии"}, Value: "great", Weights: weights(1, 1, 1, 1, 1)},
			{Text: domain.LocalizedText{EN: "Good, generally positive", RU: "Хорошо, в целом позитивно"}, Value: "good", Weights: weights(1, 1, 1, 1, 1)},
			{Text: domain.LocalizedText{EN: "Okay, neutral", RU: "Нормально, нейтрально"}, Value: "okay", Weights: weights(1, 1, 1, 1, 1)},
			{Text: domain.LocalizedText{EN: "Not great, struggling", RU: "Не очень, борюсь"}, Value: "struggling", Weights: weights(1, 1, 1, 1, 1)},
			{Text: domain.LocalizedText{EN: "Difficult day", RU: "Трудный день"}, Value: "difficult", Weights: weights(1, 1, 1, 1, 1)},
		},
	},
	{
		ID: "sleep_quality",
		Text: domain.LocalizedText{
			EN: "How did you sleep last night?",
			RU: "Как вы спали прошлой ночью?",
		},
		Options: []domain.QuizOption{
			{Text: domain.LocalizedText{EN: "Very well, refreshed", RU: "Очень хорошо, отдохнул"}, Value: "excellent", Weights: weights(1, 1, 1, 1, 1)},
			{Text: domain.LocalizedText{EN: "Pretty good", RU: "Довольно хорошо"}, Value: "good", Weights: weights(1, 1, 1, 1, 1)},
			{Text: domain.LocalizedText{EN: "Okay, some issues", RU: "Нормально, были проблемы"}, Value: "okay", Weights: weights(1, 1, 1, 1, 1)},
			{Text: domain.LocalizedText{EN: "Restless, interrupted", RU: "Беспокойно, прерывисто"}, Value: "restless", Weights: weights(1, 1, 1, 1, 1)},
			{Text: domain.LocalizedText{EN: "Poorly, exhausted", RU: "Плохо, измучен"}, Value: "poor", Weights: weights(1, 1, 1, 1, 1)},
		},
	},
}

// MatchingQuiz returns the onboarding matching questionnaire.
func MatchingQuiz() []domain.QuizQuestion {
	out := make([]domain.QuizQuestion, len(matchingQuiz))
	copy(out, matchingQuiz)
	return out
}

// DailyQuiz returns the daily check-in questionnaire.
func DailyQuiz() []domain.QuizQuestion {
	out := make([]domain.QuizQuestion, len(dailyQuiz))
	copy(out, dailyQuiz)
	return out
}
