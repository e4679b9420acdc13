package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sender identifies which side of the conversation a message came from.
type Sender string

// Message senders.
const (
	SenderUser      Sender = "user"
	SenderCompanion Sender = "companion"
)

// Chat-specific validation errors
var (
	// ErrMessageIDEmpty is returned when a message ID is empty or nil.
	ErrMessageIDEmpty = errors.New("message ID cannot be empty")

	// ErrMessageContentEmpty is returned when a message has no content.
	ErrMessageContentEmpty = errors.New("message content cannot be empty")

	// ErrInvalidSender is returned when a sender is not user or companion.
	ErrInvalidSender = errors.New("invalid message sender")
)

// ChatMessage is one message in the append-only conversation log. The
// companion variant tag is set on companion messages so the UI can render
// the right persona even after the user re-matches.
type ChatMessage struct {
	ID            uuid.UUID     `json:"id"`
	Sender        Sender        `json:"type"`
	Content       string        `json:"content"`
	Timestamp     time.Time     `json:"timestamp"`
	CompanionType CompanionType `json:"avatarType,omitempty"`
}

// NewUserMessage creates a message authored by the user.
func NewUserMessage(content string) (*ChatMessage, error) {
	msg := &ChatMessage{
		ID:        uuid.New(),
		Sender:    SenderUser,
		Content:   content,
		Timestamp: time.Now(),
	}

	if err := msg.Validate(); err != nil {
		return nil, err
	}

	return msg, nil
}

// NewCompanionMessage creates a message authored by the companion persona.
func NewCompanionMessage(companion CompanionType, content string) (*ChatMessage, error) {
	msg := &ChatMessage{
		ID:            uuid.New(),
		Sender:        SenderCompanion,
		Content:       content,
		Timestamp:     time.Now(),
		CompanionType: companion,
	}

	if err := msg.Validate(); err != nil {
		return nil, err
	}

	return msg, nil
}

// Validate checks if the ChatMessage has valid data.
func (m *ChatMessage) Validate() error {
	if m.ID == uuid.Nil {
		return ErrMessageIDEmpty
	}

	if m.Content == "" {
		return ErrMessageContentEmpty
	}

	if m.Sender != SenderUser && m.Sender != SenderCompanion {
		return ErrInvalidSender
	}

	if m.Sender == SenderCompanion && !m.CompanionType.Valid() {
		return ErrUnknownCompanion
	}

	return nil
}
