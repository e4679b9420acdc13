package generation

import (
	"context"

	"github.com/factum-app/factum/internal/domain"
)

// ReplyRequest carries everything the remote service needs to produce a
// companion reply: the persona, the interface language, and the recent
// role-tagged message history (already capped by the caller).
type ReplyRequest struct {
	Companion domain.Companion
	Language  domain.Language
	History   []domain.ChatMessage
}

// Responder generates a companion reply from the conversation so far.
// Implementations may be slow or unavailable; callers must persist the
// user's own message before invoking this and fall back to a local
// response when it errors.
type Responder interface {
	// GenerateReply returns the companion's reply text, or an error from
	// the errors in this package if generation fails for any reason.
	GenerateReply(ctx context.Context, req ReplyRequest) (string, error)
}
