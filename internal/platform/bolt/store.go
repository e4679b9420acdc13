package bolt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.etcd.io/bbolt"

	"github.com/factum-app/factum/internal/store"
)

// documentsBucket is the single bucket holding every document.
var documentsBucket = []byte("documents")

// Store is the bbolt-backed document store. It implements store.Store.
type Store struct {
	db     *bbolt.DB
	logger *slog.Logger
}

// Ensure Store implements the aggregate interface.
var _ store.Store = (*Store)(nil)

// Open opens (creating if needed) the database file at path and ensures
// the documents bucket exists. The file is locked for the lifetime of
// the process; a second process opening the same file blocks until the
// timeout and then fails, which is how the single-writer contract is
// surfaced rather than silently violated.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(documentsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize store bucket: %w", err)
	}

	return &Store{
		db:     db,
		logger: logger.With("component", "bolt_store"),
	}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Users returns the user store.
func (s *Store) Users() store.UserStore { return &userStore{s} }

// DailyQuizzes returns the daily check-in store.
func (s *Store) DailyQuizzes() store.DailyQuizStore { return &dailyQuizStore{s} }

// Chat returns the conversation log store.
func (s *Store) Chat() store.ChatStore { return &chatStore{s} }

// Sleep returns the sleep-plan store.
func (s *Store) Sleep() store.SleepStore { return &sleepStore{s} }

// Journey returns the marathon store.
func (s *Store) Journey() store.JourneyStore { return &journeyStore{s} }

// ClearAll removes every known document key unconditionally.
func (s *Store) ClearAll(ctx context.Context) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(documentsBucket)
		for _, key := range store.Keys() {
			if err := bucket.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return store.NewStoreError("all", "clear", err)
	}

	s.logger.InfoContext(ctx, "cleared all persisted documents", "keys", len(store.Keys()))
	return nil
}

// getDoc reads the raw document under key. A missing document returns
// (nil, nil); only I/O failures return an error.
func (s *Store) getDoc(key string) ([]byte, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(documentsBucket).Get([]byte(key))
		if value != nil {
			// The slice is only valid inside the transaction.
			raw = make([]byte, len(value))
			copy(raw, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// putDoc writes the raw document under key.
func (s *Store) putDoc(key string, raw []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(documentsBucket).Put([]byte(key), raw)
	})
}
