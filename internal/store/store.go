package store

import (
	"context"

	"github.com/factum-app/factum/internal/domain"
)

// UserStore persists the single local user profile.
type UserStore interface {
	// Get retrieves the cached user, or nil if none is stored or the
	// stored document is malformed. Revival rules apply: an unparsable
	// creation timestamp is replaced with now, and a companion missing
	// its illustration reference is backfilled from the catalog.
	Get(ctx context.Context) (*domain.User, error)

	// Save replaces the stored user.
	// Returns ErrInvalidEntity (wrapping the validation error) on bad data.
	Save(ctx context.Context, user *domain.User) error
}

// DailyQuizStore persists daily check-in records, at most one per
// calendar date key.
type DailyQuizStore interface {
	// List returns all records; malformed data yields an empty list.
	List(ctx context.Context) ([]domain.DailyQuizRecord, error)

	// GetByDate returns the record for the date key.
	// Returns ErrNotFound when no record exists for that date.
	GetByDate(ctx context.Context, date string) (*domain.DailyQuizRecord, error)

	// Upsert inserts the record, replacing any record with the same date
	// key, preserving the one-per-date invariant.
	Upsert(ctx context.Context, record *domain.DailyQuizRecord) error
}

// ChatStore persists the append-only conversation log in full.
type ChatStore interface {
	// List returns the whole conversation; malformed data yields an
	// empty list. Unparsable message timestamps are replaced with now.
	List(ctx context.Context) ([]domain.ChatMessage, error)

	// Append adds a message to the end of the log. This is a non-atomic
	// read-modify-write; see the package contract for the single-writer
	// limitation.
	Append(ctx context.Context, message *domain.ChatMessage) error
}

// SleepStore persists the sleep-plan singleton.
type SleepStore interface {
	// Get retrieves the stored plan, or nil if none exists.
	Get(ctx context.Context) (*domain.SleepPlan, error)

	// Save replaces the stored plan.
	Save(ctx context.Context, plan *domain.SleepPlan) error
}

// JourneyStore persists the marathon state singleton.
type JourneyStore interface {
	// Get retrieves the journey state. A missing or malformed document
	// yields an empty state, never nil.
	Get(ctx context.Context) (*domain.JourneyState, error)

	// Save replaces the stored state.
	Save(ctx context.Context, state *domain.JourneyState) error
}

// Store aggregates the per-entity stores over one underlying database.
type Store interface {
	Users() UserStore
	DailyQuizzes() DailyQuizStore
	Chat() ChatStore
	Sleep() SleepStore
	Journey() JourneyStore

	// ClearAll removes every known document key unconditionally. Used on
	// logout and explicit data deletion; irreversible.
	ClearAll(ctx context.Context) error
}
