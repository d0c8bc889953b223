package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/spiderxog/hub/internal/dependencies/clock"
	"github.com/spiderxog/hub/internal/dependencies/random"
	"github.com/spiderxog/hub/internal/model"
	"github.com/spiderxog/hub/internal/services/accounts"
)

const (
	// SessionIDLength is the length of the random part of a session id
	SessionIDLength = 22
	// SessionIDAlphabet is the characters used in session ids
	SessionIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	sessionIDPrefix = "sess_"
)

// Manager turns credential checks into ephemeral sessions and manages
// the sign-in/sign-out side effects on the account store.
//
// Active sessions live only in process memory: a restart signs
// everyone out, which matches the account store's persisted online
// flags being best-effort.
type Manager struct {
	accounts *accounts.Store
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger

	mu       sync.RWMutex
	sessions map[model.SessionID]*model.Session
}

// New creates a new session manager
func New(accts *accounts.Store, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Manager {
	return &Manager{
		accounts: accts,
		clock:    clk,
		random:   rnd,
		logger:   logger.With(slog.String("component", "session")),
		sessions: make(map[model.SessionID]*model.Session),
	}
}

// SignIn authenticates against the account store and creates a fresh
// session. Unknown accounts and wrong secrets fail with the same error
// so callers cannot tell which case occurred.
func (m *Manager) SignIn(ctx context.Context, usernameOrEmail, secret string) (*model.Session, error) {
	acc, err := m.accounts.FindByUsername(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if acc.Secret != secret {
		return nil, model.ErrInvalidCredentials
	}

	if err := m.accounts.SetOnlineStatus(ctx, acc.Username, true); err != nil {
		return nil, err
	}

	session := &model.Session{
		ID:          m.generateID(),
		Username:    acc.Username,
		DisplayName: acc.DisplayName,
		Role:        acc.Role,
		StartedAt:   m.clock.Now(),
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	m.logger.Info("signed in", slog.String("username", acc.Username))
	return session, nil
}

// SignOut ends a session and marks the account offline. Signing out a
// session whose account is already offline or gone is not an error.
func (m *Manager) SignOut(ctx context.Context, session *model.Session) error {
	if session == nil {
		return nil
	}

	m.mu.Lock()
	delete(m.sessions, session.ID)
	m.mu.Unlock()

	if err := m.accounts.SetOnlineStatus(ctx, session.Username, false); err != nil {
		return err
	}

	m.logger.Info("signed out", slog.String("username", session.Username))
	return nil
}

// Register creates a new USER account. All three inputs are required
// after trimming; the caller must sign in separately afterwards.
func (m *Manager) Register(ctx context.Context, usernameOrEmail, displayName, secret string) error {
	username := strings.TrimSpace(usernameOrEmail)
	display := strings.TrimSpace(displayName)
	if username == "" || display == "" || strings.TrimSpace(secret) == "" {
		return model.ErrMissingFields
	}

	return m.accounts.Register(ctx, model.Account{
		Username:    accounts.Normalize(username),
		DisplayName: display,
		Secret:      secret,
		Role:        model.RoleUser,
		IsOnline:    false,
	})
}

// Validate resolves a session id to its active session
func (m *Manager) Validate(id model.SessionID) (*model.Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, model.ErrInvalidSession
	}
	return session, nil
}

// ActiveCount returns the number of live sessions
func (m *Manager) ActiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// generateID generates a fresh session id
func (m *Manager) generateID() model.SessionID {
	return model.SessionID(sessionIDPrefix + m.random.String(SessionIDLength, SessionIDAlphabet))
}
