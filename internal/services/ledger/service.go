package ledger

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

// Welcome post seeded onto an empty board
const (
	welcomeTitle  = "Welcome to SpiderX OG"
	welcomeBody   = "We are thrilled to launch our new community hub. This is a fresh start for our OG members!"
	welcomeAuthor = "System"
)

// Service owns the announcement board and applies vote transitions
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	bus     *events.Bus
	logger  *slog.Logger
}

// New creates a new announcement ledger
func New(st storage.Storage, clk clock.Clock, bus *events.Bus, logger *slog.Logger) *Service {
	return &Service{
		storage: st,
		clock:   clk,
		bus:     bus,
		logger:  logger.With(slog.String("component", "ledger")),
	}
}

// List returns all announcements newest-created first. A board that
// has never been persisted is seeded with the welcome post before
// returning; a board emptied by deletes stays empty.
func (s *Service) List(ctx context.Context) ([]model.Announcement, error) {
	return s.load(ctx)
}

// Create validates and prepends a new announcement
func (s *Service) Create(ctx context.Context, authorName, title, body string) (*model.Announcement, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, model.ErrValidation
	}

	announcements, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	ann := model.Announcement{
		ID:          s.freshID(announcements),
		Title:       title,
		Body:        body,
		AuthorName:  authorName,
		CreatedAt:   s.clock.Now(),
		VotesByUser: map[string]model.VoteDirection{},
	}

	// Newest first: creation inserts at the front
	announcements = append([]model.Announcement{ann}, announcements...)
	if err := s.storage.SaveAnnouncements(ctx, announcements); err != nil {
		return nil, err
	}

	s.logger.Info("announcement created", slog.String("id", string(ann.ID)))
	s.bus.Publish(model.ChangeEvent{
		Collection: model.CollectionAnnouncements,
		Op:         model.ChangeCreated,
		EntityID:   string(ann.ID),
	})
	return &ann, nil
}

// Delete removes the matching announcement. A missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id model.AnnouncementID) error {
	announcements, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := announcements[:0]
	for _, ann := range announcements {
		if ann.ID != id {
			kept = append(kept, ann)
		}
	}
	if len(kept) == len(announcements) {
		return nil
	}

	if err := s.storage.SaveAnnouncements(ctx, kept); err != nil {
		return err
	}

	s.logger.Info("announcement deleted", slog.String("id", string(id)))
	s.bus.Publish(model.ChangeEvent{
		Collection: model.CollectionAnnouncements,
		Op:         model.ChangeDeleted,
		EntityID:   string(id),
	})
	return nil
}

// Vote applies one toggle transition for a user:
//
//   - voting the current direction again removes the vote
//   - otherwise any existing vote is retracted and the new one applied
//
// A user therefore contributes to at most one counter at a time, and a
// repeated identical call undoes the previous one. Counters are floored
// at zero so no call sequence can drive them negative.
func (s *Service) Vote(ctx context.Context, id model.AnnouncementID, userID string, direction model.VoteDirection) (*model.Announcement, error) {
	announcements, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range announcements {
		if announcements[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, model.ErrAnnouncementNotFound
	}

	ann := &announcements[idx]
	if ann.VotesByUser == nil {
		ann.VotesByUser = map[string]model.VoteDirection{}
	}

	current, hasVote := ann.VotesByUser[userID]
	switch {
	case hasVote && current == direction:
		// Identical vote toggles back to neutral
		decrement(ann, direction)
		delete(ann.VotesByUser, userID)
	default:
		if hasVote {
			decrement(ann, current)
		}
		ann.VotesByUser[userID] = direction
		increment(ann, direction)
	}

	if err := s.storage.SaveAnnouncements(ctx, announcements); err != nil {
		return nil, err
	}

	s.bus.Publish(model.ChangeEvent{
		Collection: model.CollectionAnnouncements,
		Op:         model.ChangeUpdated,
		EntityID:   string(id),
	})

	updated := announcements[idx]
	return &updated, nil
}

// load reads the board, seeding the welcome post on first use.
// A nil document means the board was never persisted; a non-nil empty
// document means every post was deleted, which must stick.
func (s *Service) load(ctx context.Context) ([]model.Announcement, error) {
	announcements, err := s.storage.LoadAnnouncements(ctx)
	if err != nil {
		return nil, err
	}
	if announcements != nil {
		return announcements, nil
	}

	welcome := model.Announcement{
		ID:          s.freshID(nil),
		Title:       welcomeTitle,
		Body:        welcomeBody,
		AuthorName:  welcomeAuthor,
		CreatedAt:   s.clock.Now(),
		VotesByUser: map[string]model.VoteDirection{},
	}

	announcements = []model.Announcement{welcome}
	if err := s.storage.SaveAnnouncements(ctx, announcements); err != nil {
		return nil, err
	}
	s.logger.Info("seeded welcome announcement")

	return announcements, nil
}

// freshID derives an id from creation time, disambiguating when two
// creations land on the same millisecond
func (s *Service) freshID(existing []model.Announcement) model.AnnouncementID {
	base := s.clock.Now().UnixMilli()
	for {
		id := model.AnnouncementID(strconv.FormatInt(base, 10))
		taken := false
		for _, ann := range existing {
			if ann.ID == id {
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

func increment(ann *model.Announcement, direction model.VoteDirection) {
	if direction == model.VoteUp {
		ann.Upvotes++
	} else {
		ann.Downvotes++
	}
}

func decrement(ann *model.Announcement, direction model.VoteDirection) {
	if direction == model.VoteUp {
		ann.Upvotes = max(0, ann.Upvotes-1)
	} else {
		ann.Downvotes = max(0, ann.Downvotes-1)
	}
}
