package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spiderxog/hub/internal/api/sse"
	"github.com/spiderxog/hub/internal/dependencies/clock"
	"github.com/spiderxog/hub/internal/dependencies/random"
	"github.com/spiderxog/hub/internal/events"
	"github.com/spiderxog/hub/internal/services/accounts"
	"github.com/spiderxog/hub/internal/services/chat"
	"github.com/spiderxog/hub/internal/services/dashboard"
	"github.com/spiderxog/hub/internal/services/ledger"
	"github.com/spiderxog/hub/internal/services/session"
	"github.com/spiderxog/hub/internal/storage"
	"github.com/spiderxog/hub/internal/storage/memory"
	redisstorage "github.com/spiderxog/hub/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Core
	Bus            *events.Bus
	Accounts       *accounts.Store
	SessionManager *session.Manager
	Ledger         *ledger.Service
	ChatLog        *chat.Log
	Dashboard      *dashboard.Service
	Hub            *sse.Hub
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	bus := events.NewBus(logger)
	accountStore := accounts.New(store, logger)
	sessionManager := session.New(accountStore, clk, rnd, logger)
	ledgerService := ledger.New(store, clk, bus, logger)
	chatLog := chat.New(store, clk, bus, logger)
	dashboardService := dashboard.New(accountStore, ledgerService, chatLog, logger)
	hub := sse.NewHub(bus, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Bus:            bus,
		Accounts:       accountStore,
		SessionManager: sessionManager,
		Ledger:         ledgerService,
		ChatLog:        chatLog,
		Dashboard:      dashboardService,
		Hub:            hub,
	}
}
