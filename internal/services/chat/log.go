package chat

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spiderxog/hub/internal/dependencies/clock"
	"github.com/spiderxog/hub/internal/events"
	"github.com/spiderxog/hub/internal/model"
	"github.com/spiderxog/hub/internal/storage"
)

// Log owns the append-only ordered chat feed
type Log struct {
	storage storage.Storage
	clock   clock.Clock
	bus     *events.Bus
	logger  *slog.Logger
}

// New creates a new chat log
func New(st storage.Storage, clk clock.Clock, bus *events.Bus, logger *slog.Logger) *Log {
	return &Log{
		storage: st,
		clock:   clk,
		bus:     bus,
		logger:  logger.With(slog.String("component", "chat")),
	}
}

// List returns all messages in append order, oldest first
func (l *Log) List(ctx context.Context) ([]model.ChatMessage, error) {
	return l.storage.LoadChatMessages(ctx)
}

// Append validates and appends a message, assigning its id and
// timestamp at append time
func (l *Log) Append(ctx context.Context, author *model.Session, text string) (*model.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.ErrValidation
	}

	messages, err := l.storage.LoadChatMessages(ctx)
	if err != nil {
		return nil, err
	}

	now := l.clock.Now()
	msg := model.ChatMessage{
		ID:         l.freshID(messages, now.UnixMilli()),
		AuthorID:   string(author.ID),
		AuthorName: author.DisplayName,
		Text:       text,
		CreatedAt:  now,
	}

	messages = append(messages, msg)
	if err := l.storage.SaveChatMessages(ctx, messages); err != nil {
		return nil, err
	}

	l.bus.Publish(model.ChangeEvent{
		Collection: model.CollectionChat,
		Op:         model.ChangeCreated,
		EntityID:   string(msg.ID),
	})
	return &msg, nil
}

// freshID derives a message id from the append timestamp,
// disambiguating bursts within the same millisecond
func (l *Log) freshID(existing []model.ChatMessage, base int64) model.MessageID {
	for {
		id := model.MessageID(strconv.FormatInt(base, 10))
		taken := false
		for _, msg := range existing {
			if msg.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		base++
	}
}
