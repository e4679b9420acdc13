package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/factum-app/factum/internal/api/shared"
	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/platform/supabase"
	"github.com/factum-app/factum/internal/service"
	"github.com/factum-app/factum/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, supabase.ErrInvalidCredentials),
		errors.Is(err, supabase.ErrInvalidToken),
		errors.Is(err, service.ErrNotSignedIn):
		return http.StatusUnauthorized

	// Conflict errors
	case errors.Is(err, supabase.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyCheckedIn),
		errors.Is(err, service.ErrNoCompanion):
		return http.StatusConflict

	// Not found errors
	case errors.Is(err, service.ErrChallengeNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, service.ErrEmptyResponses),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidClockTime),
		errors.Is(err, domain.ErrTargetSleepRange),
		errors.Is(err, domain.ErrCycleCount),
		errors.Is(err, domain.ErrInvalidSettings),
		errors.Is(err, domain.ErrMessageContentEmpty),
		errors.Is(err, domain.ErrInvalidDateKey):
		return http.StatusBadRequest

	// Upstream dependency errors
	case errors.Is(err, supabase.ErrProviderUnavailable):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, supabase.ErrInvalidCredentials):
		return "Invalid email or password"

	case errors.Is(err, supabase.ErrEmailTaken):
		return "An account with this email already exists"

	case errors.Is(err, supabase.ErrProviderUnavailable):
		return "Sign-in service is unavailable, try again later"

	case errors.Is(err, service.ErrNotSignedIn):
		return "Not signed in"

	case errors.Is(err, service.ErrNoCompanion):
		return "Take the matching quiz to choose a companion first"

	case errors.Is(err, service.ErrAlreadyCheckedIn):
		return "Already checked in today"

	case errors.Is(err, service.ErrChallengeNotFound):
		return "Challenge not found"

	case errors.Is(err, service.ErrEmptyResponses):
		return "Answers are required"

	case errors.Is(err, domain.ErrMessageContentEmpty):
		return "Message cannot be empty"

	case errors.Is(err, domain.ErrInvalidClockTime):
		return "Time must be in HH:MM format"

	case errors.Is(err, domain.ErrTargetSleepRange):
		return "Target sleep must be between 1 and 16 hours"

	case errors.Is(err, domain.ErrInvalidSettings):
		return "Unsupported settings value"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid data"

	default:
		return "An unexpected error occurred"
	}
}

// respondServiceError logs the detailed error and sends the sanitized
// status code and message mapped from the error type.
func respondServiceError(log *slog.Logger, w http.ResponseWriter, r *http.Request, msg string, err error) {
	log.Error(msg,
		slog.String("error", err.Error()),
		slog.String("trace_id", shared.GetTraceID(r.Context())))
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
}
