package catalog

import "github.com/factum-app/factum/internal/domain"

// challenges is the fixed per-companion challenge catalog. Experience
// rewards scale with difficulty: 25 easy, 50 medium, 100 hard.
var challenges = []domain.Challenge{
	{
		ID:            "luna-wind-down",
		CompanionType: domain.CompanionLuna,
		Title:         domain.LocalizedText{EN: "Evening wind-down", RU: "Вечернее замедление"},
		Description:   domain.LocalizedText{EN: "Put your phone away 30 minutes before bed tonight.", RU: "Отложите телефон за 30 минут до сна сегодня."},
		Difficulty:    domain.DifficultyEasy,
		Experience:    25,
	},
	{
		ID:            "luna-thought-dump",
		CompanionType: domain.CompanionLuna,
		Title:         domain.LocalizedText{EN: "Thought dump", RU: "Выгрузка мыслей"},
		Description:   domain.LocalizedText{EN: "Write every worry on paper before sleep for three nights.", RU: "Три вечера подряд записывайте все тревоги на бумагу перед сном."},
		Difficulty:    domain.DifficultyMedium,
		Experience:    50,
	},
	{
		ID:            "sunny-morning-light",
		CompanionType: domain.CompanionSunny,
		Title:         domain.LocalizedText{EN: "Morning light", RU: "Утренний свет"},
		Description:   domain.LocalizedText{EN: "Spend ten minutes outside within an hour of waking.", RU: "Проведите десять минут на улице в течение часа после пробуждения."},
		Difficulty:    domain.DifficultyEasy,
		Experience:    25,
	},
	{
		ID:            "sunny-tiny-win",
		CompanionType: domain.CompanionSunny,
		Title:         domain.LocalizedText{EN: "One tiny win", RU: "Одна маленькая победа"},
		Description:   domain.LocalizedText{EN: "Finish one small task you've been postponing and note how it felt.", RU: "Завершите одно маленькое отложенное дело и запишите, что почувствовали."},
		Difficulty:    domain.DifficultyMedium,
		Experience:    50,
	},
	{
		ID:            "sage-kind-mirror",
		CompanionType: domain.CompanionSage,
		Title:         domain.LocalizedText{EN: "Kind mirror", RU: "Доброе зеркало"},
		Description:   domain.LocalizedText{EN: "Write three things you did well today, however small.", RU: "Запишите три вещи, которые сегодня удались, даже самые маленькие."},
		Difficulty:    domain.DifficultyEasy,
		Experience:    25,
	},
	{
		ID:            "sage-speak-up",
		CompanionType: domain.CompanionSage,
		Title:         domain.LocalizedText{EN: "Speak up once", RU: "Выскажитесь один раз"},
		Description:   domain.LocalizedText{EN: "Share one opinion in a conversation where you'd usually stay quiet.", RU: "Выскажите одно мнение в разговоре, где обычно промолчали бы."},
		Difficulty:    domain.DifficultyHard,
		Experience:    100,
	},
	{
		ID:            "spark-two-minutes",
		CompanionType: domain.CompanionSpark,
		Title:         domain.LocalizedText{EN: "Two-minute start", RU: "Двухминутный старт"},
		Description:   domain.LocalizedText{EN: "Start the task you're avoiding and work on it for just two minutes.", RU: "Начните дело, которого избегаете, и поработайте над ним всего две минуты."},
		Difficulty:    domain.DifficultyEasy,
		Experience:    25,
	},
	{
		ID:            "spark-single-focus",
		CompanionType: domain.CompanionSpark,
		Title:         domain.LocalizedText{EN: "Single focus block", RU: "Блок одного фокуса"},
		Description:   domain.LocalizedText{EN: "Work 25 minutes on one thing with every notification off.", RU: "Поработайте 25 минут над одним делом, отключив все уведомления."},
		Difficulty:    domain.DifficultyMedium,
		Experience:    50,
	},
	{
		ID:            "haven-safe-hour",
		CompanionType: domain.CompanionHaven,
		Title:         domain.LocalizedText{EN: "Safe hour", RU: "Безопасный час"},
		Description:   domain.LocalizedText{EN: "Spend an hour doing something that feels completely safe and calm.", RU: "Проведите час за тем, что ощущается полностью безопасным и спокойным."},
		Difficulty:    domain.DifficultyEasy,
		Experience:    25,
	},
	{
		ID:            "haven-gentle-no",
		CompanionType: domain.CompanionHaven,
		Title:         domain.LocalizedText{EN: "A gentle no", RU: "Мягкое нет"},
		Description:   domain.LocalizedText{EN: "Decline one request that would drain you, kindly but firmly.", RU: "Откажитесь от одной просьбы, которая истощила бы вас, мягко, но твердо."},
		Difficulty:    domain.DifficultyHard,
		Experience:    100,
	},
}

// Challenges returns the full challenge catalog.
func Challenges() []domain.Challenge {
	out := make([]domain.Challenge, len(challenges))
	copy(out, challenges)
	return out
}

// ChallengesFor returns the challenges tied to a companion variant.
func ChallengesFor(t domain.CompanionType) []domain.Challenge {
	var out []domain.Challenge
	for _, c := range challenges {
		if c.CompanionType == t {
			out = append(out, c)
		}
	}
	return out
}

// ChallengeByID looks up a challenge by id.
func ChallengeByID(id string) (domain.Challenge, bool) {
	for _, c := range challenges {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Challenge{}, false
}
