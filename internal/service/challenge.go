package service

import (
	"context"
	"log/slog"

	"github.com/factum-app/factum/internal/catalog"
	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/platform/logger"
	"github.com/factum-app/factum/internal/store"
)

// ChallengeStatus is a catalog challenge annotated with whether the user
// has completed it.
type ChallengeStatus struct {
	domain.Challenge
	Completed bool `json:"completed"`
}

// ChallengeService lists the matched companion's challenges and records
// their completion.
type ChallengeService struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewChallengeService creates a new ChallengeService.
func NewChallengeService(users store.UserStore, log *slog.Logger) *ChallengeService {
	if users == nil {
		panic("users store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ChallengeService{
		users:  users,
		logger: log.With(slog.String("component", "challenge_service")),
	}
}

// List returns the challenges for the user's companion with completion
// flags.
func (s *ChallengeService) List(ctx context.Context) ([]ChallengeStatus, error) {
	user, err := s.users.Get(ctx)
	if err != nil {
		return nil, NewServiceError("list_challenges", "failed to read user", err)
	}
	if user == nil {
		return nil, ErrNotSignedIn
	}
	if user.Companion == nil {
		return nil, ErrNoCompanion
	}

	challenges := catalog.ChallengesFor(user.Companion.Type)
	statuses := make([]ChallengeStatus, 0, len(challenges))
	for _, ch := range challenges {
		statuses = append(statuses, ChallengeStatus{
			Challenge: ch,
			Completed: user.HasCompletedChallenge(ch.ID),
		})
	}
	return statuses, nil
}

// Complete marks a challenge as done and awards its experience.
// Completing an already-completed challenge is a no-op: the profile is
// returned unchanged and no experience is awarded twice.
func (s *ChallengeService) Complete(ctx context.Context, id string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	challenge, ok := catalog.ChallengeByID(id)
	if !ok {
		return nil, ErrChallengeNotFound
	}

	user, err := s.users.Get(ctx)
	if err != nil {
		return nil, NewServiceError("complete_challenge", "failed to read user", err)
	}
	if user == nil {
		return nil, ErrNotSignedIn
	}

	if !user.CompleteChallenge(id) {
		return user, nil
	}

	user.Experience += challenge.Experience
	if err := s.users.Save(ctx, user); err != nil {
		return nil, NewServiceError("complete_challenge", "failed to persist user", err)
	}

	log.Info("challenge completed",
		slog.String("challenge_id", id),
		slog.Int("awarded_experience", challenge.Experience))
	return user, nil
}
