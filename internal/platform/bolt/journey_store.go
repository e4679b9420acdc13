package bolt

import (
	"context"
	"encoding/json"

	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/store"
)

// journeyStore implements store.JourneyStore over the shared document
// store.
type journeyStore struct {
	s *Store
}

func (st *journeyStore) Get(ctx context.Context) (*domain.JourneyState, error) {
	raw, err := st.s.getDoc(store.KeyJourney)
	if err != nil {
		return nil, store.NewStoreError("journey", "get", err)
	}
	if raw == nil {
		return &domain.JourneyState{Entries: []domain.JourneyEntry{}}, nil
	}

	var state domain.JourneyState
	if err := json.Unmarshal(raw, &state); err != nil {
		st.s.logger.WarnContext(ctx, "malformed journey document, falling back to empty state", "error", err)
		return &domain.JourneyState{Entries: []domain.JourneyEntry{}}, nil
	}

	if state.Entries == nil {
		state.Entries = []domain.JourneyEntry{}
	}

	return &state, nil
}

func (st *journeyStore) Save(ctx context.Context, state *domain.JourneyState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return store.NewStoreError("journey", "save", err)
	}

	if err := st.s.putDoc(store.KeyJourney, raw); err != nil {
		return store.NewStoreError("journey", "save", err)
	}
	return nil
}
