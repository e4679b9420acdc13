package bolt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/store"
)

// sleepStore implements store.SleepStore over the shared document store.
type sleepStore struct {
	s *Store
}

func (st *sleepStore) Get(ctx context.Context) (*domain.SleepPlan, error) {
	raw, err := st.s.getDoc(store.KeySleepPlan)
	if err != nil {
		return nil, store.NewStoreError("sleep_plan", "get", err)
	}
	if raw == nil {
		return nil, nil
	}

	var plan domain.SleepPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		st.s.logger.WarnContext(ctx, "malformed sleep plan document, falling back to nil", "error", err)
		return nil, nil
	}

	return &plan, nil
}

func (st *sleepStore) Save(ctx context.Context, plan *domain.SleepPlan) error {
	if err := plan.Validate(); err != nil {
		return store.NewStoreError("sleep_plan", "save", fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return store.NewStoreError("sleep_plan", "save", err)
	}

	if err := st.s.putDoc(store.KeySleepPlan, raw); err != nil {
		return store.NewStoreError("sleep_plan", "save", err)
	}
	return nil
}
