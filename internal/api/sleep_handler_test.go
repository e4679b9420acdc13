package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/service"
)

// stubSleepStore keeps the plan singleton in memory.
type stubSleepStore struct {
	plan *domain.SleepPlan
}

func (s *stubSleepStore) Get(ctx context.Context) (*domain.SleepPlan, error) { return s.plan, nil }
func (s *stubSleepStore) Save(ctx context.Context, plan *domain.SleepPlan) error {
	s.plan = plan
	return nil
}

func newSleepHandler(store *stubSleepStore) *SleepHandler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSleepHandler(service.NewSleepService(store, log), log)
}

func TestSleepHandlerCreatePlan(t *testing.T) {
	t.Parallel()

	store := &stubSleepStore{}
	h := newSleepHandler(store)

	body := bytes.NewBufferString(`{"bedTime": "23:00", "targetSleep": 7.5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sleep", body)
	rec := httptest.NewRecorder()

	h.CreatePlan(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var result service.SleepPlanResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "06:30", result.Plan.WakeTime)
	assert.Equal(t, 5, result.Plan.Cycles)
	assert.Len(t, result.Options, 3)

	require.NotNil(t, store.plan)
	assert.Equal(t, "06:30", store.plan.WakeTime)
}

func TestSleepHandlerCreatePlanRejectsBadTime(t *testing.T) {
	t.Parallel()

	h := newSleepHandler(&stubSleepStore{})

	body := bytes.NewBufferString(`{"bedTime": "25:00", "targetSleep": 7.5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sleep", body)
	rec := httptest.NewRecorder()

	h.CreatePlan(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "HH:MM")
}

func TestSleepHandlerCreatePlanRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	h := newSleepHandler(&stubSleepStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/sleep", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()

	h.CreatePlan(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSleepHandlerGetPlanNoContent(t *testing.T) {
	t.Parallel()

	h := newSleepHandler(&stubSleepStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/sleep", nil)
	rec := httptest.NewRecorder()

	h.GetPlan(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSleepHandlerScoreQuality(t *testing.T) {
	t.Parallel()

	h := newSleepHandler(&stubSleepStore{})

	body := bytes.NewBufferString(`{"actualSleep": 6.5, "targetSleep": 8}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sleep/quality", body)
	rec := httptest.NewRecorder()

	h.ScoreQuality(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SleepQualityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 60, resp.Quality)
}

func TestSleepHandlerScoreQualityRequiresBothFields(t *testing.T) {
	t.Parallel()

	h := newSleepHandler(&stubSleepStore{})

	body := bytes.NewBufferString(`{"actualSleep": 6.5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sleep/quality", body)
	rec := httptest.NewRecorder()

	h.ScoreQuality(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
