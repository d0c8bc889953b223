package accounts

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spiderxog/hub/internal/model"
	"github.com/spiderxog/hub/internal/storage"
)

// Reserved admin account, seeded on first access
const (
	ReservedAdminUsername = "adminacces.com"
	reservedAdminSecret   = "admin1233"
	reservedAdminName     = "Administrator"
)

// Store owns the durable list of registered accounts
type Store struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new account store
func New(st storage.Storage, logger *slog.Logger) *Store {
	return &Store{
		storage: st,
		logger:  logger.With(slog.String("component", "accounts")),
	}
}

// LoadAll returns every registered account, seeding the reserved admin
// account if it is missing. Seeding persists before returning and never
// duplicates the reserved account.
func (s *Store) LoadAll(ctx context.Context) ([]model.Account, error) {
	accounts, err := s.storage.LoadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	for _, acc := range accounts {
		if acc.Username == ReservedAdminUsername {
			return accounts, nil
		}
	}

	accounts = append(accounts, model.Account{
		Username:    ReservedAdminUsername,
		DisplayName: reservedAdminName,
		Secret:      reservedAdminSecret,
		Role:        model.RoleAdmin,
		IsOnline:    false,
	})

	if err := s.storage.SaveAccounts(ctx, accounts); err != nil {
		return nil, err
	}
	s.logger.Info("seeded reserved admin account")

	return accounts, nil
}

// FindByUsername looks an account up by case-insensitive username
func (s *Store) FindByUsername(ctx context.Context, name string) (*model.Account, error) {
	accounts, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	normalized := Normalize(name)
	for i := range accounts {
		if strings.ToLower(accounts[i].Username) == normalized {
			return &accounts[i], nil
		}
	}
	return nil, model.ErrAccountNotFound
}

// Register appends a new account. The candidate's username is stored
// lower-cased; registration fails if it collides case-insensitively
// with an existing account.
func (s *Store) Register(ctx context.Context, candidate model.Account) error {
	accounts, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}

	candidate.Username = Normalize(candidate.Username)
	for _, acc := range accounts {
		if strings.ToLower(acc.Username) == candidate.Username {
			return model.ErrDuplicateUsername
		}
	}

	accounts = append(accounts, candidate)
	if err := s.storage.SaveAccounts(ctx, accounts); err != nil {
		return err
	}

	s.logger.Info("account registered", slog.String("username", candidate.Username))
	return nil
}

// SetOnlineStatus updates the online flag of the matching account and
// persists the collection. Unknown usernames are a no-op, not an error.
func (s *Store) SetOnlineStatus(ctx context.Context, username string, online bool) error {
	accounts, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}

	normalized := Normalize(username)
	for i := range accounts {
		if strings.ToLower(accounts[i].Username) == normalized {
			accounts[i].IsOnline = online
			return s.storage.SaveAccounts(ctx, accounts)
		}
	}
	return nil
}

// Normalize trims and lower-cases a username for comparison and storage
func Normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
