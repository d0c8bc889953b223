package dashboard

import (
	"context"
	"log/slog"

	"github.com/spiderxog/hub/internal/model"
	"github.com/spiderxog/hub/internal/services/accounts"
	"github.com/spiderxog/hub/internal/services/chat"
	"github.com/spiderxog/hub/internal/services/ledger"
)

// Overview summarizes membership and activity for the admin view
type Overview struct {
	TotalMembers        int `json:"total_members"`
	OnlineMembers       int `json:"online_members"`
	ActiveAnnouncements int `json:"active_announcements"`
	ChatMessages        int `json:"chat_messages"`
}

// Member is a directory entry. Secrets never leave the core.
type Member struct {
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Role        model.Role `json:"role"`
	IsOnline    bool       `json:"is_online"`
}

// Service computes admin summaries from the owning services, so the
// counters always agree with what the board and chat views show.
// It is pull-only; live views subscribe to the change bus instead of
// polling.
type Service struct {
	accounts *accounts.Store
	ledger   *ledger.Service
	chat     *chat.Log
	logger   *slog.Logger
}

// New creates a new dashboard service
func New(accts *accounts.Store, ledgerService *ledger.Service, chatLog *chat.Log, logger *slog.Logger) *Service {
	return &Service{
		accounts: accts,
		ledger:   ledgerService,
		chat:     chatLog,
		logger:   logger.With(slog.String("component", "dashboard")),
	}
}

// Overview returns the membership and activity counters
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	members, err := s.accounts.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	announcements, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	messages, err := s.chat.List(ctx)
	if err != nil {
		return nil, err
	}

	online := 0
	for _, m := range members {
		if m.IsOnline {
			online++
		}
	}

	return &Overview{
		TotalMembers:        len(members),
		OnlineMembers:       online,
		ActiveAnnouncements: len(announcements),
		ChatMessages:        len(messages),
	}, nil
}

// Members returns the directory with credentials stripped
func (s *Service) Members(ctx context.Context) ([]Member, error) {
	all, err := s.accounts.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]Member, len(all))
	for i, acc := range all {
		members[i] = Member{
			Username:    acc.Username,
			DisplayName: acc.DisplayName,
			Role:        acc.Role,
			IsOnline:    acc.IsOnline,
		}
	}
	return members, nil
}
