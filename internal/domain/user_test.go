package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("localized to the given language", func(t *testing.T) {
		t.Parallel()
		s := DefaultSettings(LanguageRU)
		assert.Equal(t, LanguageRU, s.Language)
		assert.Equal(t, ThemeDark, s.Theme)
		assert.True(t, s.Notifications)
		assert.False(t, s.DataSharing)
	})

	t.Run("invalid language falls back to english", func(t *testing.T) {
		t.Parallel()
		s := DefaultSettings(Language("fr"))
		assert.Equal(t, LanguageEN, s.Language)
	})
}

func TestSettingsMerge(t *testing.T) {
	t.Parallel()

	base := DefaultSettings(LanguageEN)

	t.Run("cached values win", func(t *testing.T) {
		t.Parallel()
		cached := Settings{Language: LanguageRU, Theme: ThemeLight, Notifications: false, DataSharing: true}
		merged := base.Merge(cached)
		assert.Equal(t, cached, merged)
	})

	t.Run("invalid cached enums fall back to base", func(t *testing.T) {
		t.Parallel()
		cached := Settings{Language: "", Theme: "", Notifications: false, DataSharing: true}
		merged := base.Merge(cached)
		assert.Equal(t, LanguageEN, merged.Language)
		assert.Equal(t, ThemeDark, merged.Theme)
		assert.False(t, merged.Notifications)
		assert.True(t, merged.DataSharing)
	})
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user starts with zeroed progress", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser(uuid.New(), "friend@example.com", "Friend", LanguageEN)
		require.NoError(t, err)
		assert.Equal(t, 0, user.Experience)
		assert.Equal(t, 0, user.Streak)
		assert.NotNil(t, user.CompletedChallenges)
		assert.Empty(t, user.CompletedChallenges)
		assert.Nil(t, user.Companion)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("rejects nil id", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser(uuid.Nil, "friend@example.com", "Friend", LanguageEN)
		assert.ErrorIs(t, err, ErrEmptyUserID)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser(uuid.New(), "", "Friend", LanguageEN)
		assert.ErrorIs(t, err, ErrEmptyEmail)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser(uuid.New(), "not-an-email", "Friend", LanguageEN)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	valid := func() *User {
		user, err := NewUser(uuid.New(), "friend@example.com", "Friend", LanguageEN)
		require.NoError(t, err)
		return user
	}

	t.Run("negative experience", func(t *testing.T) {
		t.Parallel()
		user := valid()
		user.Experience = -1
		assert.ErrorIs(t, user.Validate(), ErrNegativeProgress)
	})

	t.Run("negative streak", func(t *testing.T) {
		t.Parallel()
		user := valid()
		user.Streak = -1
		assert.ErrorIs(t, user.Validate(), ErrNegativeProgress)
	})

	t.Run("unknown companion variant", func(t *testing.T) {
		t.Parallel()
		user := valid()
		user.Companion = &Companion{Type: CompanionType("Nova")}
		assert.ErrorIs(t, user.Validate(), ErrUnknownCompanion)
	})

	t.Run("invalid settings", func(t *testing.T) {
		t.Parallel()
		user := valid()
		user.Settings.Theme = "sepia"
		assert.ErrorIs(t, user.Validate(), ErrInvalidSettings)
	})
}

func TestCompleteChallenge(t *testing.T) {
	t.Parallel()

	user, err := NewUser(uuid.New(), "friend@example.com", "Friend", LanguageEN)
	require.NoError(t, err)

	assert.True(t, user.CompleteChallenge("luna_1"))
	assert.True(t, user.HasCompletedChallenge("luna_1"))

	// Completing again reports false so no second award happens.
	assert.False(t, user.CompleteChallenge("luna_1"))
	assert.Len(t, user.CompletedChallenges, 1)
}
