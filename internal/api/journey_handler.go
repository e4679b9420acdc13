package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/factum-app/factum/internal/api/shared"
	"github.com/factum-app/factum/internal/service"
)

// JourneyHandler handles 30-day marathon HTTP requests.
type JourneyHandler struct {
	journey   *service.JourneyService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewJourneyHandler creates a new JourneyHandler.
func NewJourneyHandler(journey *service.JourneyService, log *slog.Logger) *JourneyHandler {
	if log == nil {
		log = slog.Default()
	}
	return &JourneyHandler{
		journey:   journey,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "journey_handler")),
	}
}

// GetQuestions handles GET /api/journey/questions requests.
func (h *JourneyHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.journey.Questions())
}

// GetStatus handles GET /api/journey requests.
func (h *JourneyHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.journey.Status(r.Context())
	if err != nil {
		respondServiceError(h.logger, w, r, "journey status failed", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, status)
}

// CheckIn handles POST /api/journey/check-in requests.
func (h *JourneyHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req JourneyCheckInRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.journey.CheckIn(r.Context(), req.Responses, req.Notes)
	if err != nil {
		respondServiceError(h.logger, w, r, "journey check-in failed", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, entry)
}
