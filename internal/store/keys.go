package store

// Persisted document keys, one per entity type. Absence of a key is a
// valid, expected state (first run). The values are part of the on-disk
// format and must not change.
const (
	KeyUser         = "factum_user"
	KeyDailyQuizzes = "factum_daily_quizzes"
	KeyChatMessages = "factum_chat_messages"
	KeySleepPlan    = "factum_sleep_data"
	KeyJourney      = "factum_marathon"
)

// Keys returns every known document key; ClearAll implementations drop
// each of them unconditionally.
func Keys() []string {
	return []string{
		KeyUser,
		KeyDailyQuizzes,
		KeyChatMessages,
		KeySleepPlan,
		KeyJourney,
	}
}
