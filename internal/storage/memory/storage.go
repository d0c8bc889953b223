package memory

import (
	"context"
	"sync"

	"github.com/spiderxog/hub/internal/model"
	"github.com/spiderxog/hub/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Snapshots are deep-copied on both save and load so callers never
// share state with the store. Copies preserve nil-ness so a document
// that was never saved stays distinguishable from one saved empty.
type Storage struct {
	mu sync.RWMutex

	accounts      []model.Account
	announcements []model.Announcement
	chatMessages  []model.ChatMessage
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account document

func (s *Storage) LoadAccounts(ctx context.Context) ([]model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAccounts(s.accounts), nil
}

func (s *Storage) SaveAccounts(ctx context.Context, accounts []model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = copyAccounts(accounts)
	return nil
}

// Announcement document

func (s *Storage) LoadAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAnnouncements(s.announcements), nil
}

func (s *Storage) SaveAnnouncements(ctx context.Context, announcements []model.Announcement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcements = copyAnnouncements(announcements)
	return nil
}

// Chat document

func (s *Storage) LoadChatMessages(ctx context.Context) ([]model.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMessages(s.chatMessages), nil
}

func (s *Storage) SaveChatMessages(ctx context.Context, messages []model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatMessages = copyMessages(messages)
	return nil
}

func copyAccounts(in []model.Account) []model.Account {
	if in == nil {
		return nil
	}
	out := make([]model.Account, len(in))
	copy(out, in)
	return out
}

func copyAnnouncements(in []model.Announcement) []model.Announcement {
	if in == nil {
		return nil
	}
	out := make([]model.Announcement, len(in))
	for i, a := range in {
		// The vote map is the only reference field
		votes := make(map[string]model.VoteDirection, len(a.VotesByUser))
		for userID, dir := range a.VotesByUser {
			votes[userID] = dir
		}
		a.VotesByUser = votes
		out[i] = a
	}
	return out
}

func copyMessages(in []model.ChatMessage) []model.ChatMessage {
	if in == nil {
		return nil
	}
	out := make([]model.ChatMessage, len(in))
	copy(out, in)
	return out
}
