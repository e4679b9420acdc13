package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factum-app/factum/internal/catalog"
	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/platform/supabase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sessionFor(id, email string, metadata map[string]interface{}) *supabase.Session {
	return &supabase.Session{
		AccessToken: "token",
		User: supabase.SessionUser{
			ID:           id,
			Email:        email,
			UserMetadata: metadata,
		},
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		user     supabase.SessionUser
		expected string
	}{
		{
			name: "full_name has highest priority",
			user: supabase.SessionUser{
				Email: "a@example.com",
				UserMetadata: map[string]interface{}{
					"full_name": "Ada Lovelace",
					"username":  "ada",
				},
			},
			expected: "Ada Lovelace",
		},
		{
			name: "falls through to preferred_username",
			user: supabase.SessionUser{
				Email: "a@example.com",
				UserMetadata: map[string]interface{}{
					"preferred_username": "ada",
				},
			},
			expected: "ada",
		},
		{
			name: "blank metadata values are skipped",
			user: supabase.SessionUser{
				Email: "a@example.com",
				UserMetadata: map[string]interface{}{
					"full_name": "   ",
					"name":      "Ada",
				},
			},
			expected: "Ada",
		},
		{
			name: "non-string metadata values are skipped",
			user: supabase.SessionUser{
				Email: "a@example.com",
				UserMetadata: map[string]interface{}{
					"full_name": 42,
				},
			},
			expected: "a",
		},
		{
			name:     "email local part when no metadata",
			user:     supabase.SessionUser{Email: "ada.l@example.com"},
			expected: "ada.l",
		},
		{
			name:     "generic fallback when nothing is usable",
			user:     supabase.SessionUser{Email: ""},
			expected: "Friend",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, DisplayName(tc.user))
		})
	}
}

func TestHydrateUser(t *testing.T) {
	t.Parallel()

	freshID := uuid.New()

	t.Run("no cached profile creates a fresh user", func(t *testing.T) {
		t.Parallel()
		fresh := supabase.SessionUser{ID: freshID.String(), Email: "ada@example.com"}
		user, err := HydrateUser(fresh, nil, domain.LanguageEN)
		require.NoError(t, err)
		assert.Equal(t, freshID, user.ID)
		assert.Equal(t, 0, user.Experience)
		assert.Equal(t, domain.DefaultSettings(domain.LanguageEN), user.Settings)
	})

	t.Run("same email keeps cached progress", func(t *testing.T) {
		t.Parallel()
		companion := catalog.CompanionByType(domain.CompanionLuna)
		cached, err := domain.NewUser(uuid.New(), "Ada@Example.com", "Ada", domain.LanguageEN)
		require.NoError(t, err)
		cached.Experience = 350
		cached.Streak = 7
		cached.Companion = &companion
		cached.CompletedChallenges = []string{"luna_1"}

		fresh := supabase.SessionUser{ID: freshID.String(), Email: "ada@example.com"}
		user, err := HydrateUser(fresh, cached, domain.LanguageEN)
		require.NoError(t, err)

		assert.Equal(t, freshID, user.ID)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, 350, user.Experience)
		assert.Equal(t, 7, user.Streak)
		assert.Equal(t, []string{"luna_1"}, user.CompletedChallenges)
		require.NotNil(t, user.Companion)
		assert.Equal(t, domain.CompanionLuna, user.Companion.Type)
	})

	t.Run("different email discards cached progress", func(t *testing.T) {
		t.Parallel()
		cached, err := domain.NewUser(uuid.New(), "other@example.com", "Other", domain.LanguageEN)
		require.NoError(t, err)
		cached.Experience = 999

		fresh := supabase.SessionUser{ID: freshID.String(), Email: "ada@example.com"}
		user, err := HydrateUser(fresh, cached, domain.LanguageEN)
		require.NoError(t, err)
		assert.Equal(t, 0, user.Experience)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		fresh := supabase.SessionUser{
			ID:           freshID.String(),
			Email:        "ada@example.com",
			UserMetadata: map[string]interface{}{"full_name": "Ada"},
		}
		first, err := HydrateUser(fresh, nil, domain.LanguageRU)
		require.NoError(t, err)

		second, err := HydrateUser(fresh, first, domain.LanguageRU)
		require.NoError(t, err)

		// CreatedAt is the only field allowed to differ between a fresh
		// profile and a rehydrated one.
		second.CreatedAt = first.CreatedAt
		assert.Equal(t, first, second)
	})

	t.Run("rejects a garbage provider id", func(t *testing.T) {
		t.Parallel()
		fresh := supabase.SessionUser{ID: "not-a-uuid", Email: "ada@example.com"}
		_, err := HydrateUser(fresh, nil, domain.LanguageEN)
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})
}

func TestIdentityServiceSignIn(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	provider := &stubProvider{session: sessionFor(id.String(), "ada@example.com", nil)}
	st := &memStore{}
	emitter := supabase.NewSessionEmitter(testLogger())
	svc := NewIdentityService(provider, st, emitter, domain.LanguageEN, testLogger())

	var events []supabase.SessionEventType
	unsubscribe := svc.OnSessionChange(func(event supabase.SessionEvent) {
		events = append(events, event.Type)
	})
	defer unsubscribe()

	user, err := svc.SignIn(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	stored, err := svc.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)

	require.Len(t, events, 1)
	assert.Equal(t, supabase.SessionSignedIn, events[0])
}

func TestIdentityServiceCurrentUserNotSignedIn(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{}
	svc := NewIdentityService(provider, &memStore{}, supabase.NewSessionEmitter(testLogger()), domain.LanguageEN, testLogger())

	_, err := svc.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestIdentityServiceLogout(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	provider := &stubProvider{session: sessionFor(id.String(), "ada@example.com", nil)}
	st := &memStore{}
	emitter := supabase.NewSessionEmitter(testLogger())
	svc := NewIdentityService(provider, st, emitter, domain.LanguageEN, testLogger())

	_, err := svc.SignIn(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	var events []supabase.SessionEventType
	unsubscribe := svc.OnSessionChange(func(event supabase.SessionEvent) {
		events = append(events, event.Type)
	})
	defer unsubscribe()

	require.NoError(t, svc.Logout(context.Background()))

	assert.True(t, provider.signedOut)
	assert.True(t, st.cleared)

	_, err = svc.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)

	require.Len(t, events, 1)
	assert.Equal(t, supabase.SessionSignedOut, events[0])
}

func TestIdentityServiceUpdateSettings(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	provider := &stubProvider{session: sessionFor(id.String(), "ada@example.com", nil)}
	st := &memStore{}
	svc := NewIdentityService(provider, st, supabase.NewSessionEmitter(testLogger()), domain.LanguageEN, testLogger())

	_, err := svc.SignIn(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	updated, err := svc.UpdateSettings(context.Background(), domain.Settings{
		Language:      domain.LanguageRU,
		Theme:         domain.ThemeLight,
		Notifications: false,
		DataSharing:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageRU, updated.Settings.Language)

	_, err = svc.UpdateSettings(context.Background(), domain.Settings{Language: "fr", Theme: "sepia"})
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
}
