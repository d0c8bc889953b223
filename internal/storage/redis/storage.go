package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spiderxog/hub/internal/model"
	"github.com/spiderxog/hub/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Each collection lives in a single key as one JSON document, rewritten
// in full on every save.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account document

func (s *Storage) LoadAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := s.loadDocument(ctx, model.CollectionAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *Storage) SaveAccounts(ctx context.Context, accounts []model.Account) error {
	return s.saveDocument(ctx, model.CollectionAccounts, accounts)
}

// Announcement document

func (s *Storage) LoadAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	var announcements []model.Announcement
	if err := s.loadDocument(ctx, model.CollectionAnnouncements, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (s *Storage) SaveAnnouncements(ctx context.Context, announcements []model.Announcement) error {
	return s.saveDocument(ctx, model.CollectionAnnouncements, announcements)
}

// Chat document

func (s *Storage) LoadChatMessages(ctx context.Context) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if err := s.loadDocument(ctx, model.CollectionChat, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *Storage) SaveChatMessages(ctx context.Context, messages []model.ChatMessage) error {
	return s.saveDocument(ctx, model.CollectionChat, messages)
}

// loadDocument reads and decodes a collection snapshot.
// A missing key leaves dest nil, so a document that was never saved
// stays distinguishable from one saved as an empty JSON array.
func (s *Storage) loadDocument(ctx context.Context, collection model.Collection, dest any) error {
	data, err := s.client.Get(ctx, documentKey(collection)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("%w: load %s: %v", model.ErrStorageUnavailable, collection, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrCorruptState, collection, err)
	}
	return nil
}

// saveDocument encodes and overwrites a collection snapshot
func (s *Storage) saveDocument(ctx context.Context, collection model.Collection, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, documentKey(collection), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: save %s: %v", model.ErrStorageUnavailable, collection, err)
	}
	return nil
}
