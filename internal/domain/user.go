package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User-specific validation errors
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrNegativeProgress = errors.New("experience and streak cannot be negative")
	ErrInvalidSettings  = errors.New("settings contain an unsupported value")
)

// Settings holds the user's preferences. Language and Theme are closed
// sets; the two toggles are independent booleans.
type Settings struct {
	Language      Language `json:"language"`
	Theme         Theme    `json:"theme"`
	Notifications bool     `json:"notifications"`
	DataSharing   bool     `json:"dataLogging"`
}

// DefaultSettings returns the settings a brand-new user starts with,
// localized to the given fallback language.
func DefaultSettings(lang Language) Settings {
	if !lang.Valid() {
		lang = LanguageEN
	}
	return Settings{
		Language:      lang,
		Theme:         ThemeDark,
		Notifications: true,
		DataSharing:   false,
	}
}

// Merge combines cached settings over base, field by field: a cached
// field wins when it carries a value, otherwise the base field is kept.
// Boolean toggles are always taken from cached, matching the behavior of
// replaying a previously persisted settings document over defaults.
func (s Settings) Merge(cached Settings) Settings {
	out := cached
	if !cached.Language.Valid() {
		out.Language = s.Language
	}
	if !cached.Theme.Valid() {
		out.Theme = s.Theme
	}
	return out
}

// Validate checks the settings against their closed sets.
func (s Settings) Validate() error {
	if !s.Language.Valid() || !s.Theme.Valid() {
		return ErrInvalidSettings
	}
	return nil
}

// User is the device-local identity with its accumulated progress.
//
// Level and title are intentionally absent: they are derived views of
// Experience and must always be recomputed through the derive package,
// never stored as ground truth.
type User struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	Companion           *Companion `json:"avatar,omitempty"`
	Experience          int        `json:"experience"`
	Streak              int        `json:"streak"`
	CompletedChallenges []string   `json:"completedChallenges"`
	Settings            Settings   `json:"settings"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// NewUser creates a fresh user with zeroed progress and default settings.
// Returns an error if validation fails.
func NewUser(id uuid.UUID, email, name string, fallbackLang Language) (*User, error) {
	user := &User{
		ID:                  id,
		Email:               email,
		Name:                name,
		Experience:          0,
		Streak:              0,
		CompletedChallenges: []string{},
		Settings:            DefaultSettings(fallbackLang),
		CreatedAt:           time.Now(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Experience < 0 || u.Streak < 0 {
		return ErrNegativeProgress
	}

	if err := u.Settings.Validate(); err != nil {
		return err
	}

	if u.Companion != nil && !u.Companion.Type.Valid() {
		return ErrUnknownCompanion
	}

	return nil
}

// HasCompletedChallenge reports whether the challenge id is already in
// the completed set.
func (u *User) HasCompletedChallenge(id string) bool {
	for _, done := range u.CompletedChallenges {
		if done == id {
			return true
		}
	}
	return false
}

// CompleteChallenge records the challenge id in the completed set.
// Returns false if it was already recorded, so callers can make the
// experience award idempotent.
func (u *User) CompleteChallenge(id string) bool {
	if u.HasCompletedChallenge(id) {
		return false
	}
	u.CompletedChallenges = append(u.CompletedChallenges, id)
	return true
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format. The identity
// provider is the authority on emails; this only rejects obvious garbage.
func validateEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.Index(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
