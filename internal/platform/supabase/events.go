package supabase

import (
	"log/slog"
	"sync"
)

// SessionEventType identifies what happened to the session.
type SessionEventType string

const (
	// SessionSignedIn fires after a successful sign-in or sign-up
	SessionSignedIn SessionEventType = "SIGNED_IN"

	// SessionSignedOut fires after the session is cleared
	SessionSignedOut SessionEventType = "SIGNED_OUT"
)

// SessionEvent describes a session change. Session is nil for
// SessionSignedOut.
type SessionEvent struct {
	Type    SessionEventType
	Session *Session
}

// SessionHandler receives session change notifications.
type SessionHandler func(event SessionEvent)

// SessionEmitter dispatches session change events to registered handlers.
// Handlers run synchronously on the goroutine that emits the event.
type SessionEmitter struct {
	mu       sync.RWMutex
	handlers map[int]SessionHandler
	nextID   int
	logger   *slog.Logger
}

// NewSessionEmitter creates a new instance of SessionEmitter.
func NewSessionEmitter(logger *slog.Logger) *SessionEmitter {
	return &SessionEmitter{
		handlers: make(map[int]SessionHandler),
		logger:   logger.With("component", "session_emitter"),
	}
}

// Subscribe registers a handler and returns a function that removes it.
func (e *SessionEmitter) Subscribe(handler SessionHandler) func() {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.handlers[id] = handler
	count := len(e.handlers)
	e.mu.Unlock()

	e.logger.Debug("registered session handler", "handler_count", count)

	return func() {
		e.mu.Lock()
		delete(e.handlers, id)
		e.mu.Unlock()
	}
}

// Emit publishes the event to every registered handler.
func (e *SessionEmitter) Emit(event SessionEvent) {
	e.mu.RLock()
	handlers := make([]SessionHandler, 0, len(e.handlers))
	for _, h := range e.handlers {
		handlers = append(handlers, h)
	}
	e.mu.RUnlock()

	e.logger.Debug("emitting session event",
		"event_type", string(event.Type),
		"handler_count", len(handlers))

	for _, handler := range handlers {
		handler(event)
	}
}
