package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/platform/logger"
	"github.com/factum-app/factum/internal/platform/supabase"
	"github.com/factum-app/factum/internal/store"
)

// IdentityProvider is the slice of the remote identity provider the
// identity service needs. *supabase.Client satisfies it.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*supabase.Session, error)
	SignIn(ctx context.Context, email, password string) (*supabase.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// defaultDisplayName is used when neither metadata nor the email yields
// a usable name.
const defaultDisplayName = "Friend"

// displayNameKeys are the metadata fields consulted for a display name,
// in priority order.
var displayNameKeys = []string{"full_name", "name", "preferred_username", "user_name", "username"}

// IdentityService manages the local user profile and its relationship to
// the remote identity provider: sign-up, sign-in, hydration of the
// remote identity into the local profile, settings, and logout.
type IdentityService struct {
	provider     IdentityProvider
	store        store.Store
	emitter      *supabase.SessionEmitter
	fallbackLang domain.Language
	logger       *slog.Logger

	mu          sync.Mutex
	accessToken string
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(
	provider IdentityProvider,
	st store.Store,
	emitter *supabase.SessionEmitter,
	fallbackLang domain.Language,
	log *slog.Logger,
) *IdentityService {
	if provider == nil {
		panic("provider cannot be nil")
	}
	if st == nil {
		panic("store cannot be nil")
	}
	if emitter == nil {
		panic("emitter cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &IdentityService{
		provider:     provider,
		store:        st,
		emitter:      emitter,
		fallbackLang: fallbackLang,
		logger:       log.With(slog.String("component", "identity_service")),
	}
}

// OnSessionChange registers a handler for session events and returns a
// function that removes it.
func (s *IdentityService) OnSessionChange(handler supabase.SessionHandler) func() {
	return s.emitter.Subscribe(handler)
}

// SignUp registers a new account with the provider and hydrates the
// local profile from the issued session.
func (s *IdentityService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	var metadata map[string]interface{}
	if name != "" {
		metadata = map[string]interface{}{"full_name": name}
	}

	session, err := s.provider.SignUp(ctx, email, password, metadata)
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, "sign_up", session)
}

// SignIn authenticates against the provider and hydrates the local
// profile from the issued session. Locally cached progress survives when
// the same account signs back in.
func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, "sign_in", session)
}

// establishSession hydrates and persists the user for a fresh session,
// remembers the access token for logout, and notifies subscribers.
func (s *IdentityService) establishSession(ctx context.Context, operation string, session *supabase.Session) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cached, err := s.store.Users().Get(ctx)
	if err != nil {
		return nil, NewServiceError(operation, "failed to read cached user", err)
	}

	user, err := HydrateUser(session.User, cached, s.fallbackLang)
	if err != nil {
		return nil, NewServiceError(operation, "failed to hydrate user", err)
	}

	if err := s.store.Users().Save(ctx, user); err != nil {
		return nil, NewServiceError(operation, "failed to persist user", err)
	}

	s.mu.Lock()
	s.accessToken = session.AccessToken
	s.mu.Unlock()

	log.Info("session established",
		slog.String("user_id", user.ID.String()),
		slog.Bool("reused_cached_profile", cached != nil && sameEmail(cached.Email, session.User.Email)))

	s.emitter.Emit(supabase.SessionEvent{Type: supabase.SessionSignedIn, Session: session})
	return user, nil
}

// CurrentUser returns the locally stored profile.
// Returns ErrNotSignedIn when no profile exists.
func (s *IdentityService) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, err := s.store.Users().Get(ctx)
	if err != nil {
		return nil, NewServiceError("current_user", "failed to read user", err)
	}
	if user == nil {
		return nil, ErrNotSignedIn
	}
	return user, nil
}

// UpdateSettings validates and persists new preferences on the profile.
func (s *IdentityService) UpdateSettings(ctx context.Context, settings domain.Settings) (*domain.User, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	user.Settings = settings
	if err := s.store.Users().Save(ctx, user); err != nil {
		return nil, NewServiceError("update_settings", "failed to persist user", err)
	}
	return user, nil
}

// Logout revokes the remote session when one is held, wipes all local
// data, and notifies subscribers. The local wipe happens even when the
// provider call fails.
func (s *IdentityService) Logout(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	token := s.accessToken
	s.accessToken = ""
	s.mu.Unlock()

	if token != "" {
		if err := s.provider.SignOut(ctx, token); err != nil {
			log.Warn("remote sign-out failed, clearing local data anyway",
				slog.String("error", err.Error()))
		}
	}

	if err := s.store.ClearAll(ctx); err != nil {
		return NewServiceError("logout", "failed to clear local data", err)
	}

	log.Info("signed out, local data cleared")
	s.emitter.Emit(supabase.SessionEvent{Type: supabase.SessionSignedOut})
	return nil
}

// HydrateUser merges a fresh remote identity with the locally cached
// profile. When the cached profile belongs to the same email (compared
// case-insensitively), its progress (companion, experience, streak,
// completed challenges, settings) is kept and only the identity fields
// are refreshed. Any other cached profile is discarded and a fresh one
// is created. The merge is idempotent: hydrating twice with the same
// inputs yields the same profile.
func HydrateUser(fresh supabase.SessionUser, cached *domain.User, fallbackLang domain.Language) (*domain.User, error) {
	id, err := uuid.Parse(fresh.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: provider user id %q", domain.ErrInvalidID, fresh.ID)
	}

	name := DisplayName(fresh)

	if cached != nil && sameEmail(cached.Email, fresh.Email) {
		user := *cached
		user.ID = id
		user.Email = fresh.Email
		if user.Name == "" {
			user.Name = name
		}
		user.Settings = domain.DefaultSettings(fallbackLang).Merge(cached.Settings)
		if user.CompletedChallenges == nil {
			user.CompletedChallenges = []string{}
		}

		if err := user.Validate(); err != nil {
			return nil, err
		}
		return &user, nil
	}

	return domain.NewUser(id, fresh.Email, name, fallbackLang)
}

// DisplayName picks a display name for the identity: the first non-empty
// metadata field in priority order, then the email's local part, then a
// generic fallback.
func DisplayName(fresh supabase.SessionUser) string {
	for _, key := range displayNameKeys {
		if value, ok := fresh.UserMetadata[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}

	if at := strings.Index(fresh.Email, "@"); at > 0 {
		return fresh.Email[:at]
	}

	return defaultDisplayName
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
