package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/factum-app/factum/internal/api/shared"
	"github.com/factum-app/factum/internal/service"
)

// ChallengeHandler handles challenge HTTP requests.
type ChallengeHandler struct {
	challenges *service.ChallengeService
	logger     *slog.Logger
}

// NewChallengeHandler creates a new ChallengeHandler.
func NewChallengeHandler(challenges *service.ChallengeService, log *slog.Logger) *ChallengeHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ChallengeHandler{
		challenges: challenges,
		logger:     log.With(slog.String("component", "challenge_handler")),
	}
}

// ListChallenges handles GET /api/challenges requests.
func (h *ChallengeHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.challenges.List(r.Context())
	if err != nil {
		respondServiceError(h.logger, w, r, "challenge listing failed", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, statuses)
}

// CompleteChallenge handles POST /api/challenges/{id}/complete requests.
func (h *ChallengeHandler) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Challenge id is required")
		return
	}

	user, err := h.challenges.Complete(r.Context(), id)
	if err != nil {
		respondServiceError(h.logger, w, r, "challenge completion failed", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profileToResponse(user))
}
