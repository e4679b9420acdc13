package service

import (
	"context"
	"log/slog"

	"github.com/factum-app/factum/internal/catalog"
	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/generation"
	"github.com/factum-app/factum/internal/platform/logger"
	"github.com/factum-app/factum/internal/store"
)

// defaultMaxHistoryTurns caps how many recent messages are sent to the
// remote model.
const defaultMaxHistoryTurns = 8

// ChatService runs the companion conversation. The user's message is
// always persisted before the remote model is consulted, and a local
// phrase bank stands in whenever the model is unavailable, errors out,
// or was never configured.
type ChatService struct {
	users      store.UserStore
	chat       store.ChatStore
	responder  generation.Responder // nil means fallback-only
	maxHistory int
	logger     *slog.Logger
}

// NewChatService creates a new ChatService. responder may be nil, in
// which case every reply comes from the fallback phrase bank.
func NewChatService(
	users store.UserStore,
	chat store.ChatStore,
	responder generation.Responder,
	maxHistory int,
	log *slog.Logger,
) *ChatService {
	if users == nil {
		panic("users store cannot be nil")
	}
	if chat == nil {
		panic("chat store cannot be nil")
	}
	if maxHistory <= 0 {
		maxHistory = defaultMaxHistoryTurns
	}
	if log == nil {
		log = slog.Default()
	}

	return &ChatService{
		users:      users,
		chat:       chat,
		responder:  responder,
		maxHistory: maxHistory,
		logger:     log.With(slog.String("component", "chat_service")),
	}
}

// History returns the conversation so far. An empty conversation with a
// matched companion is seeded with a greeting from the phrase bank so
// the companion always speaks first.
func (s *ChatService) History(ctx context.Context) ([]domain.ChatMessage, error) {
	messages, err := s.chat.List(ctx)
	if err != nil {
		return nil, NewServiceError("chat_history", "failed to read conversation", err)
	}
	if len(messages) > 0 {
		return messages, nil
	}

	user, err := s.users.Get(ctx)
	if err != nil {
		return nil, NewServiceError("chat_history", "failed to read user", err)
	}
	if user == nil || user.Companion == nil {
		return messages, nil
	}

	greeting := catalog.FallbackPhrase(user.Companion.Type, user.Settings.Language)
	welcome, err := domain.NewCompanionMessage(user.Companion.Type, greeting)
	if err != nil {
		return nil, NewServiceError("chat_history", "failed to build greeting", err)
	}
	if err := s.chat.Append(ctx, welcome); err != nil {
		return nil, NewServiceError("chat_history", "failed to persist greeting", err)
	}

	return []domain.ChatMessage{*welcome}, nil
}

// Send records the user's message and produces the companion's reply.
//
// The user's message is persisted first so it survives a failed or slow
// remote call. The reply then comes from the remote model when one is
// configured and succeeds, and from the phrase bank otherwise.
func (s *ChatService) Send(ctx context.Context, content string) (*domain.ChatMessage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.Get(ctx)
	if err != nil {
		return nil, NewServiceError("chat_send", "failed to read user", err)
	}
	if user == nil {
		return nil, ErrNotSignedIn
	}
	if user.Companion == nil {
		return nil, ErrNoCompanion
	}

	userMsg, err := domain.NewUserMessage(content)
	if err != nil {
		return nil, err
	}
	if err := s.chat.Append(ctx, userMsg); err != nil {
		return nil, NewServiceError("chat_send", "failed to persist user message", err)
	}

	history, err := s.chat.List(ctx)
	if err != nil {
		return nil, NewServiceError("chat_send", "failed to read conversation", err)
	}
	if len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}

	reply := s.generateReply(ctx, log, user, history)

	companionMsg, err := domain.NewCompanionMessage(user.Companion.Type, reply)
	if err != nil {
		return nil, NewServiceError("chat_send", "failed to build reply", err)
	}
	if err := s.chat.Append(ctx, companionMsg); err != nil {
		return nil, NewServiceError("chat_send", "failed to persist reply", err)
	}

	return companionMsg, nil
}

// generateReply asks the remote model for a reply and falls back to the
// phrase bank on any failure.
func (s *ChatService) generateReply(
	ctx context.Context,
	log *slog.Logger,
	user *domain.User,
	history []domain.ChatMessage,
) string {
	lang := user.Settings.Language

	if s.responder == nil {
		return catalog.FallbackPhrase(user.Companion.Type, lang)
	}

	reply, err := s.responder.GenerateReply(ctx, generation.ReplyRequest{
		Companion: *user.Companion,
		Language:  lang,
		History:   history,
	})
	if err != nil {
		log.Warn("remote reply failed, using fallback phrase",
			slog.String("companion", string(user.Companion.Type)),
			slog.String("error", err.Error()))
		return catalog.FallbackPhrase(user.Companion.Type, lang)
	}

	return reply
}
