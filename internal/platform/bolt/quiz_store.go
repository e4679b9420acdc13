package bolt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/store"
)

// dailyQuizStore implements store.DailyQuizStore over the shared
// document store.
type dailyQuizStore struct {
	s *Store
}

func (st *dailyQuizStore) List(ctx context.Context) ([]domain.DailyQuizRecord, error) {
	raw, err := st.s.getDoc(store.KeyDailyQuizzes)
	if err != nil {
		return nil, store.NewStoreError("daily_quiz", "list", err)
	}
	if raw == nil {
		return []domain.DailyQuizRecord{}, nil
	}

	var records []domain.DailyQuizRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		st.s.logger.WarnContext(ctx, "malformed daily quiz document, falling back to empty list", "error", err)
		return []domain.DailyQuizRecord{}, nil
	}

	return records, nil
}

func (st *dailyQuizStore) GetByDate(ctx context.Context, date string) (*domain.DailyQuizRecord, error) {
	records, err := st.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Date == date {
			return &records[i], nil
		}
	}

	return nil, fmt.Errorf("%w: daily quiz for %s", store.ErrNotFound, date)
}

// Upsert replaces any record sharing the new record's date key, keeping
// at most one record per calendar date regardless of how often a date is
// written.
func (st *dailyQuizStore) Upsert(ctx context.Context, record *domain.DailyQuizRecord) error {
	if err := record.Validate(); err != nil {
		return store.NewStoreError("daily_quiz", "upsert", fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	records, err := st.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range records {
		if records[i].Date == record.Date {
			records[i] = *record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, *record)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return store.NewStoreError("daily_quiz", "upsert", err)
	}

	if err := st.s.putDoc(store.KeyDailyQuizzes, raw); err != nil {
		return store.NewStoreError("daily_quiz", "upsert", err)
	}
	return nil
}
