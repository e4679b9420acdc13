package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/factum-app/factum/internal/api/shared"
	"github.com/factum-app/factum/internal/service"
)

// QuizHandler handles matching quiz and daily check-in HTTP requests.
type QuizHandler struct {
	quiz      *service.QuizService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quiz *service.QuizService, log *slog.Logger) *QuizHandler {
	if log == nil {
		log = slog.Default()
	}
	return &QuizHandler{
		quiz:      quiz,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "quiz_handler")),
	}
}

// GetMatchingQuestions handles GET /api/quiz/matching requests.
func (h *QuizHandler) GetMatchingQuestions(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.quiz.MatchingQuestions())
}

// SubmitMatching handles POST /api/quiz/matching requests.
func (h *QuizHandler) SubmitMatching(w http.ResponseWriter, r *http.Request) {
	var req SubmitResponsesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.quiz.SubmitMatching(r.Context(), req.Responses)
	if err != nil {
		respondServiceError(h.logger, w, r, "matching quiz failed", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profileToResponse(user))
}

// GetDailyQuestions handles GET /api/quiz/daily requests.
func (h *QuizHandler) GetDailyQuestions(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.quiz.DailyQuestions())
}

// SubmitDaily handles POST /api/quiz/daily requests.
func (h *QuizHandler) SubmitDaily(w http.ResponseWriter, r *http.Request) {
	var req SubmitResponsesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, err := h.quiz.SubmitDaily(r.Context(), req.Responses)
	if err != nil {
		respondServiceError(h.logger, w, r, "daily check-in failed", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, record)
}

// GetCheckIns handles GET /api/quiz/daily/history requests.
func (h *QuizHandler) GetCheckIns(w http.ResponseWriter, r *http.Request) {
	records, err := h.quiz.CheckIns(r.Context())
	if err != nil {
		respondServiceError(h.logger, w, r, "check-in history failed", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, records)
}
