package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/store"
)

// chatStore implements store.ChatStore over the shared document store.
type chatStore struct {
	s *Store
}

// persistedMessage keeps the timestamp raw so an unparsable value can be
// revived to now instead of dropping the message.
type persistedMessage struct {
	ID            string               `json:"id"`
	Sender        domain.Sender        `json:"type"`
	Content       string               `json:"content"`
	Timestamp     string               `json:"timestamp"`
	CompanionType domain.CompanionType `json:"avatarType,omitempty"`
}

func (st *chatStore) List(ctx context.Context) ([]domain.ChatMessage, error) {
	raw, err := st.s.getDoc(store.KeyChatMessages)
	if err != nil {
		return nil, store.NewStoreError("chat", "list", err)
	}
	if raw == nil {
		return []domain.ChatMessage{}, nil
	}

	var docs []persistedMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		st.s.logger.WarnContext(ctx, "malformed chat document, falling back to empty list", "error", err)
		return []domain.ChatMessage{}, nil
	}

	messages := make([]domain.ChatMessage, 0, len(docs))
	for _, doc := range docs {
		msg := domain.ChatMessage{
			Sender:        doc.Sender,
			Content:       doc.Content,
			Timestamp:     reviveTimestamp(doc.Timestamp),
			CompanionType: doc.CompanionType,
		}
		if id, err := uuid.Parse(doc.ID); err == nil {
			msg.ID = id
		} else {
			msg.ID = uuid.New()
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// Append is a read-modify-write: it reads the current log, pushes the
// new message, and writes the whole list back. Interleaved appends from
// independent processes can lose one write; see the store package
// contract.
func (st *chatStore) Append(ctx context.Context, message *domain.ChatMessage) error {
	if err := message.Validate(); err != nil {
		return store.NewStoreError("chat", "append", fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	raw, err := st.s.getDoc(store.KeyChatMessages)
	if err != nil {
		return store.NewStoreError("chat", "append", err)
	}

	var docs []persistedMessage
	if raw != nil {
		if err := json.Unmarshal(raw, &docs); err != nil {
			st.s.logger.WarnContext(ctx, "malformed chat document, starting a fresh log", "error", err)
			docs = nil
		}
	}

	docs = append(docs, persistedMessage{
		ID:            message.ID.String(),
		Sender:        message.Sender,
		Content:       message.Content,
		Timestamp:     message.Timestamp.Format(time.RFC3339Nano),
		CompanionType: message.CompanionType,
	})

	out, err := json.Marshal(docs)
	if err != nil {
		return store.NewStoreError("chat", "append", err)
	}

	if err := st.s.putDoc(store.KeyChatMessages, out); err != nil {
		return store.NewStoreError("chat", "append", err)
	}
	return nil
}
