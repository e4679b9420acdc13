package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/factum-app/factum/internal/api/shared"
	"github.com/factum-app/factum/internal/service"
)

// AuthHandler handles sign-up, sign-in, logout, and profile requests.
type AuthHandler struct {
	identity  *service.IdentityService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(identity *service.IdentityService, log *slog.Logger) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		identity:  identity,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/auth/register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.identity.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondServiceError(h.logger, w, r, "sign-up failed", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, profileToResponse(user))
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.identity.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(h.logger, w, r, "sign-in failed", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profileToResponse(user))
}

// Logout handles POST /api/auth/logout requests. All local data is wiped.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.Logout(r.Context()); err != nil {
		respondServiceError(h.logger, w, r, "logout failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetProfile handles GET /api/profile requests.
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.identity.CurrentUser(r.Context())
	if err != nil {
		respondServiceError(h.logger, w, r, "profile lookup failed", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profileToResponse(user))
}

// UpdateSettings handles PUT /api/profile/settings requests.
func (h *AuthHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.identity.UpdateSettings(r.Context(), settingsFromRequest(req))
	if err != nil {
		respondServiceError(h.logger, w, r, "settings update failed", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profileToResponse(user))
}
