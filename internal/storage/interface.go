package storage

import (
	"context"

	"github.com/spiderxog/hub/internal/model"
)

// Storage defines the interface for data persistence.
//
// Each collection is an independently persisted full-snapshot document:
// saves overwrite the whole document, loads return the whole document.
// A document that has never been saved loads as nil; a document that
// was saved empty loads as an empty, non-nil collection. Callers use
// the difference to run first-time seeding exactly once.
type Storage interface {
	// Account document
	LoadAccounts(ctx context.Context) ([]model.Account, error)
	SaveAccounts(ctx context.Context, accounts []model.Account) error

	// Announcement document
	LoadAnnouncements(ctx context.Context) ([]model.Announcement, error)
	SaveAnnouncements(ctx context.Context, announcements []model.Announcement) error

	// Chat document
	LoadChatMessages(ctx context.Context) ([]model.ChatMessage, error)
	SaveChatMessages(ctx context.Context, messages []model.ChatMessage) error
}
