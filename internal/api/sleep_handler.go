package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/factum-app/factum/internal/api/shared"
	"github.com/factum-app/factum/internal/service"
)

// SleepHandler handles sleep planning HTTP requests.
type SleepHandler struct {
	sleep     *service.SleepService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewSleepHandler creates a new SleepHandler.
func NewSleepHandler(sleep *service.SleepService, log *slog.Logger) *SleepHandler {
	if log == nil {
		log = slog.Default()
	}
	return &SleepHandler{
		sleep:     sleep,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "sleep_handler")),
	}
}

// GetPlan handles GET /api/sleep requests. Responds 204 when no plan has
// been saved yet.
func (h *SleepHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.sleep.Current(r.Context())
	if err != nil {
		respondServiceError(h.logger, w, r, "sleep plan lookup failed", err)
		return
	}
	if plan == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, plan)
}

// CreatePlan handles POST /api/sleep requests.
func (h *SleepHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req SleepPlanRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.sleep.Plan(r.Context(), req.BedTime, req.TargetSleep)
	if err != nil {
		respondServiceError(h.logger, w, r, "sleep planning failed", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, result)
}

// ScoreQuality handles POST /api/sleep/quality requests.
func (h *SleepHandler) ScoreQuality(w http.ResponseWriter, r *http.Request) {
	var req SleepQualityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	quality := h.sleep.Quality(req.ActualSleep, req.TargetSleep)
	shared.RespondWithJSON(w, r, http.StatusOK, SleepQualityResponse{Quality: quality})
}
