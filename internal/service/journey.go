package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/factum-app/factum/internal/catalog"
	"github.com/factum-app/factum/internal/derive"
	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/platform/logger"
	"github.com/factum-app/factum/internal/store"
)

// JourneyStatus is the derived view of the 30-day marathon.
type JourneyStatus struct {
	State          domain.JourneyState `json:"state"`
	Day            int                 `json:"day"`
	CheckedInToday bool                `json:"checkedInToday"`
	Complete       bool                `json:"complete"`
}

// JourneyService runs the 30-day marathon: daily reflections against the
// fixed question set, with the day number derived from the start date.
type JourneyService struct {
	journey store.JourneyStore
	now     func() time.Time
	logger  *slog.Logger
}

// NewJourneyService creates a new JourneyService. now may be nil, in
// which case time.Now is used.
func NewJourneyService(journey store.JourneyStore, now func() time.Time, log *slog.Logger) *JourneyService {
	if journey == nil {
		panic("journey store cannot be nil")
	}
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}

	return &JourneyService{
		journey: journey,
		now:     now,
		logger:  log.With(slog.String("component", "journey_service")),
	}
}

// Questions returns the fixed reflection questions.
func (s *JourneyService) Questions() []catalog.ReflectionQuestion {
	return catalog.MarathonQuestions()
}

// Status returns the marathon state with its derived fields.
func (s *JourneyService) Status(ctx context.Context) (*JourneyStatus, error) {
	state, err := s.journey.Get(ctx)
	if err != nil {
		return nil, NewServiceError("journey_status", "failed to read state", err)
	}

	now := s.now()
	_, checkedIn := state.EntryForDate(domain.DateKey(now))

	return &JourneyStatus{
		State:          *state,
		Day:            derive.JourneyDay(state.StartDate, now),
		CheckedInToday: checkedIn,
		Complete:       state.Complete(),
	}, nil
}

// CheckIn records today's reflection. Submitting again on the same date
// replaces the earlier entry, so a reflection stays editable all day.
func (s *JourneyService) CheckIn(ctx context.Context, responses map[string]string, notes domain.JourneyNotes) (*domain.JourneyEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(responses) == 0 {
		return nil, ErrEmptyResponses
	}

	state, err := s.journey.Get(ctx)
	if err != nil {
		return nil, NewServiceError("journey_check_in", "failed to read state", err)
	}

	now := s.now()
	entry := domain.JourneyEntry{
		Date:      domain.DateKey(now),
		Day:       derive.JourneyDay(state.StartDate, now),
		Responses: responses,
		Notes:     notes,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	state.Upsert(entry)
	if err := s.journey.Save(ctx, state); err != nil {
		return nil, NewServiceError("journey_check_in", "failed to persist state", err)
	}

	log.Info("marathon reflection recorded",
		slog.String("date", entry.Date),
		slog.Int("day", entry.Day))
	return &entry, nil
}
