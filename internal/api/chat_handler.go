package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/factum-app/factum/internal/api/shared"
	"github.com/factum-app/factum/internal/service"
)

// ChatHandler handles conversation-related HTTP requests.
type ChatHandler struct {
	chat      *service.ChatService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chat *service.ChatService, log *slog.Logger) *ChatHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ChatHandler{
		chat:      chat,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "chat_handler")),
	}
}

// GetHistory handles GET /api/chat requests.
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chat.History(r.Context())
	if err != nil {
		respondServiceError(h.logger, w, r, "chat history failed", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, messages)
}

// SendMessage handles POST /api/chat requests.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	reply, err := h.chat.Send(r.Context(), req.Content)
	if err != nil {
		respondServiceError(h.logger, w, r, "chat send failed", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, reply)
}
