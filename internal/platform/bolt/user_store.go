package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/factum-app/factum/internal/catalog"
	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/store"
)

// userStore implements store.UserStore over the shared document store.
type userStore struct {
	s *Store
}

// persistedUser mirrors domain.User but keeps the creation timestamp as
// a raw string so an unparsable value can be revived instead of failing
// the whole document.
type persistedUser struct {
	ID                  string            `json:"id"`
	Email               string            `json:"email"`
	Name                string            `json:"name"`
	Companion           *domain.Companion `json:"avatar,omitempty"`
	Experience          int               `json:"experience"`
	Streak              int               `json:"streak"`
	CompletedChallenges []string          `json:"completedChallenges"`
	Settings            domain.Settings   `json:"settings"`
	CreatedAt           string            `json:"createdAt"`
}

func (st *userStore) Get(ctx context.Context) (*domain.User, error) {
	raw, err := st.s.getDoc(store.KeyUser)
	if err != nil {
		return nil, store.NewStoreError("user", "get", err)
	}
	if raw == nil {
		return nil, nil
	}

	var doc persistedUser
	if err := json.Unmarshal(raw, &doc); err != nil {
		st.s.logger.WarnContext(ctx, "malformed user document, falling back to nil", "error", err)
		return nil, nil
	}

	return reviveUser(&doc), nil
}

func (st *userStore) Save(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return store.NewStoreError("user", "save", fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	raw, err := json.Marshal(persistedUser{
		ID:                  user.ID.String(),
		Email:               user.Email,
		Name:                user.Name,
		Companion:           user.Companion,
		Experience:          user.Experience,
		Streak:              user.Streak,
		CompletedChallenges: user.CompletedChallenges,
		Settings:            user.Settings,
		CreatedAt:           user.CreatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return store.NewStoreError("user", "save", err)
	}

	if err := st.s.putDoc(store.KeyUser, raw); err != nil {
		return store.NewStoreError("user", "save", err)
	}
	return nil
}

// reviveUser applies the per-entity revival rules: an unparsable id
// yields a fresh one, an unparsable creation timestamp becomes now, and
// a companion persisted by an older schema without its illustration
// reference is backfilled from the static catalog.
func reviveUser(doc *persistedUser) *domain.User {
	user := &domain.User{
		Email:               doc.Email,
		Name:                doc.Name,
		Companion:           doc.Companion,
		Experience:          doc.Experience,
		Streak:              doc.Streak,
		CompletedChallenges: doc.CompletedChallenges,
		Settings:            doc.Settings,
		CreatedAt:           reviveTimestamp(doc.CreatedAt),
	}

	if id, err := uuid.Parse(doc.ID); err == nil {
		user.ID = id
	}

	if user.CompletedChallenges == nil {
		user.CompletedChallenges = []string{}
	}

	if user.Companion != nil && user.Companion.Image == "" {
		user.Companion.Image = catalog.CompanionByType(user.Companion.Type).Image
	}

	return user
}

// reviveTimestamp parses an RFC 3339 timestamp, substituting now for
// anything unparsable rather than propagating an invalid instant.
func reviveTimestamp(value string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t
	}
	return time.Now()
}
