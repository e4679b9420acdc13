package api

import (
	"time"

	"github.com/factum-app/factum/internal/derive"
	"github.com/factum-app/factum/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the sign-up endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name"     validate:"omitempty,max=64"`
}

// LoginRequest defines the payload for the sign-in endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// SettingsRequest defines the payload for the settings endpoint.
type SettingsRequest struct {
	Language      string `json:"language"      validate:"required,oneof=en rus"`
	Theme         string `json:"theme"         validate:"required,oneof=light dark"`
	Notifications bool   `json:"notifications"`
	DataSharing   bool   `json:"dataLogging"`
}

// SendMessageRequest defines the payload for the chat endpoint.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// SubmitResponsesRequest defines the payload for quiz submissions.
type SubmitResponsesRequest struct {
	Responses map[string]string `json:"responses" validate:"required,min=1"`
}

// JourneyCheckInRequest defines the payload for a marathon reflection.
type JourneyCheckInRequest struct {
	Responses map[string]string   `json:"responses" validate:"required,min=1"`
	Notes     domain.JourneyNotes `json:"notes"`
}

// SleepPlanRequest defines the payload for computing a sleep plan.
type SleepPlanRequest struct {
	BedTime     string  `json:"bedTime"     validate:"required"`
	TargetSleep float64 `json:"targetSleep" validate:"required,gt=0,lte=16"`
}

// SleepQualityRequest defines the payload for scoring a night's sleep.
type SleepQualityRequest struct {
	ActualSleep float64 `json:"actualSleep" validate:"required,gt=0"`
	TargetSleep float64 `json:"targetSleep" validate:"required,gt=0"`
}

// SleepQualityResponse carries the derived quality score.
type SleepQualityResponse struct {
	Quality int `json:"quality"`
}

// LevelResponse is the derived level view embedded in the profile.
type LevelResponse struct {
	Level    int     `json:"level"`
	Title    string  `json:"title"`
	Progress float64 `json:"progress"`
}

// ProfileResponse represents the response data for the user profile.
type ProfileResponse struct {
	ID                  string            `json:"id"`
	Email               string            `json:"email"`
	Name                string            `json:"name"`
	Companion           *domain.Companion `json:"avatar,omitempty"`
	Experience          int               `json:"experience"`
	Streak              int               `json:"streak"`
	Level               LevelResponse     `json:"level"`
	CompletedChallenges []string          `json:"completedChallenges"`
	Settings            domain.Settings   `json:"settings"`
	CreatedAt           time.Time         `json:"createdAt"`
}

// settingsFromRequest converts a validated SettingsRequest into domain
// settings.
func settingsFromRequest(req SettingsRequest) domain.Settings {
	return domain.Settings{
		Language:      domain.Language(req.Language),
		Theme:         domain.Theme(req.Theme),
		Notifications: req.Notifications,
		DataSharing:   req.DataSharing,
	}
}

// profileToResponse converts a domain.User to a ProfileResponse, with
// the level view derived from experience and the title localized to the
// user's language.
func profileToResponse(user *domain.User) ProfileResponse {
	info := derive.CalculateLevel(user.Experience)

	return ProfileResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		Companion:  user.Companion,
		Experience: user.Experience,
		Streak:     user.Streak,
		Level: LevelResponse{
			Level:    info.Level,
			Title:    info.Title.In(user.Settings.Language),
			Progress: info.Progress,
		},
		CompletedChallenges: user.CompletedChallenges,
		Settings:            user.Settings,
		CreatedAt:           user.CreatedAt,
	}
}
