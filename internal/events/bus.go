package events

import (
	"log/slog"
	"sync"

	"github.com/spiderxog/hub/internal/model"
)

// Handler receives a change event. Handlers run synchronously on the
// publishing goroutine and must not block.
type Handler func(event model.ChangeEvent)

// Bus fans collection-changed events out to subscribers.
//
// The bus spawns no goroutines and keeps no timers: publishing calls
// every handler inline, so the core stays a single synchronous actor.
// Callers that want push delivery (e.g. SSE) bridge from a handler.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]Handler
	logger *slog.Logger
}

// NewBus creates a new event bus
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		subs:   make(map[int]Handler),
		logger: logger.With(slog.String("component", "events")),
	}
}

// Subscribe registers a handler and returns a function that removes it
func (b *Bus) Subscribe(handler Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers an event to all current subscribers
func (b *Bus) Publish(event model.ChangeEvent) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	b.logger.Debug("change event",
		slog.String("collection", string(event.Collection)),
		slog.String("op", string(event.Op)),
		slog.String("entity_id", event.EntityID))

	for _, h := range handlers {
		h(event)
	}
}

// SubscriberCount returns the number of registered handlers
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
