package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/platform/supabase"
	"github.com/factum-app/factum/internal/service"
	"github.com/factum-app/factum/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", supabase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", supabase.ErrInvalidToken, http.StatusUnauthorized},
		{"not signed in", service.ErrNotSignedIn, http.StatusUnauthorized},
		{"email taken", supabase.ErrEmailTaken, http.StatusConflict},
		{"already checked in", service.ErrAlreadyCheckedIn, http.StatusConflict},
		{"no companion", service.ErrNoCompanion, http.StatusConflict},
		{"challenge not found", service.ErrChallengeNotFound, http.StatusNotFound},
		{"record not found", store.ErrNotFound, http.StatusNotFound},
		{"empty responses", service.ErrEmptyResponses, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"bad clock time", domain.ErrInvalidClockTime, http.StatusBadRequest},
		{"sleep range", domain.ErrTargetSleepRange, http.StatusBadRequest},
		{"bad settings", domain.ErrInvalidSettings, http.StatusBadRequest},
		{"empty message", domain.ErrMessageContentEmpty, http.StatusBadRequest},
		{"provider down", supabase.ErrProviderUnavailable, http.StatusBadGateway},
		{"anything else", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestMapErrorToStatusCodeUnwrapsChains(t *testing.T) {
	t.Parallel()

	wrapped := service.NewServiceError("submit daily quiz", "rejected", service.ErrAlreadyCheckedIn)
	assert.Equal(t, http.StatusConflict, MapErrorToStatusCode(wrapped))

	deep := fmt.Errorf("handler: %w", store.NewStoreError("user", "get", store.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(deep))
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"invalid credentials", supabase.ErrInvalidCredentials, "Invalid email or password"},
		{"email taken", supabase.ErrEmailTaken, "An account with this email already exists"},
		{"no companion", service.ErrNoCompanion, "Take the matching quiz to choose a companion first"},
		{"already checked in", service.ErrAlreadyCheckedIn, "Already checked in today"},
		{"internal detail hidden", errors.New("pq: connection refused"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestGetSafeErrorMessageNeverEchoesInput(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("token %s leaked", "sk-secret")
	msg := GetSafeErrorMessage(err)
	assert.NotContains(t, msg, "sk-secret")
}
