package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/spiderxog/hub/internal/dependencies/mocks"
	"github.com/spiderxog/hub/internal/events"
	"github.com/spiderxog/hub/internal/model"
	"github.com/spiderxog/hub/internal/storage/memory"
	"github.com/spiderxog/hub/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage   *memory.Storage
	clock     *mocks.MockClock
	bus       *events.Bus
	service   *Service
	published []model.ChangeEvent
	ctx       context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.bus = events.NewBus(testutil.NopLogger())
	s.published = nil
	s.bus.Subscribe(func(evt model.ChangeEvent) {
		s.published = append(s.published, evt)
	})
	s.service = New(s.storage, s.clock, s.bus, testutil.NopLogger())
	s.ctx = context.Background()
}

// List tests

func (s *ServiceSuite) TestListSeedsWelcomePostOnEmptyBoard() {
	announcements, err := s.service.List(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(announcements, 1)
	s.Equal("Welcome to SpiderX OG", announcements[0].Title)
	s.Equal("System", announcements[0].AuthorName)
	s.Zero(announcements[0].Upvotes)
	s.Zero(announcements[0].Downvotes)
}

func (s *ServiceSuite) TestListSeedsOnlyOnce() {
	_, err := s.service.List(s.ctx)
	s.Require().NoError(err)

	announcements, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(announcements, 1)
}

func (s *ServiceSuite) TestListSeedsOnFirstUseOnly() {
	announcements, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(announcements, 1)

	s.Require().NoError(s.service.Delete(s.ctx, announcements[0].ID))

	// Deleting the last post empties the board for good; the welcome
	// post does not come back on later reads.
	announcements, err = s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(announcements)

	announcements, err = s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(announcements)
}

func (s *ServiceSuite) TestListNewestFirst() {
	_, err := s.service.Create(s.ctx, "Admin", "First", "first body")
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	_, err = s.service.Create(s.ctx, "Admin", "Second", "second body")
	s.Require().NoError(err)

	announcements, err := s.service.List(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(announcements, 3)
	s.Equal("Second", announcements[0].Title)
	s.Equal("First", announcements[1].Title)
	s.Equal("Welcome to SpiderX OG", announcements[2].Title)
}

// Create tests

func (s *ServiceSuite) TestCreateSucceeds() {
	ann, err := s.service.Create(s.ctx, "Admin", "Patch Notes", "New season is live.")
	s.Require().NoError(err)

	s.NotEmpty(ann.ID)
	s.Equal("Patch Notes", ann.Title)
	s.Equal("Admin", ann.AuthorName)
	s.Equal(s.clock.Now(), ann.CreatedAt)
	s.Zero(ann.Upvotes)
	s.Zero(ann.Downvotes)
}

func (s *ServiceSuite) TestCreateTrimsTitleAndBody() {
	ann, err := s.service.Create(s.ctx, "Admin", "  Title  ", "  body  ")
	s.Require().NoError(err)

	s.Equal("Title", ann.Title)
	s.Equal("body", ann.Body)
}

func (s *ServiceSuite) TestCreateRejectsBlankFields() {
	_, err := s.service.Create(s.ctx, "Admin", "   ", "body")
	s.ErrorIs(err, model.ErrValidation)

	_, err = s.service.Create(s.ctx, "Admin", "title", "   ")
	s.ErrorIs(err, model.ErrValidation)
}

func (s *ServiceSuite) TestCreateAssignsDistinctIDsWithinSameMillisecond() {
	first, err := s.service.Create(s.ctx, "Admin", "One", "body")
	s.Require().NoError(err)
	second, err := s.service.Create(s.ctx, "Admin", "Two", "body")
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)
}

func (s *ServiceSuite) TestCreatePublishesChange() {
	ann, err := s.service.Create(s.ctx, "Admin", "Title", "body")
	s.Require().NoError(err)

	s.Require().NotEmpty(s.published)
	last := s.published[len(s.published)-1]
	s.Equal(model.CollectionAnnouncements, last.Collection)
	s.Equal(model.ChangeCreated, last.Op)
	s.Equal(string(ann.ID), last.EntityID)
}

// Delete tests

func (s *ServiceSuite) TestDeleteRemovesAnnouncement() {
	ann, err := s.service.Create(s.ctx, "Admin", "Title", "body")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, ann.ID))

	announcements, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	for _, a := range announcements {
		s.NotEqual(ann.ID, a.ID)
	}
}

func (s *ServiceSuite) TestDeleteUnknownIDIsNoop() {
	_, err := s.service.Create(s.ctx, "Admin", "Title", "body")
	s.Require().NoError(err)
	before := len(s.published)

	s.Require().NoError(s.service.Delete(s.ctx, "missing"))

	// No change event for a no-op delete
	s.Len(s.published, before)
}

func (s *ServiceSuite) TestDeletePublishesChange() {
	ann, err := s.service.Create(s.ctx, "Admin", "Title", "body")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, ann.ID))

	last := s.published[len(s.published)-1]
	s.Equal(model.ChangeDeleted, last.Op)
	s.Equal(string(ann.ID), last.EntityID)
}

// Vote tests

func (s *ServiceSuite) TestVoteUpIncrementsUpvotes() {
	ann, err := s.service.Create(s.ctx, "Admin", "Title", "body")
	s.Require().NoError(err)

	voted, err := s.service.Vote(s.ctx, ann.ID, "user-1", model.VoteUp)
	s.Require().NoError(err)

	s.Equal(1, voted.Upvotes)
	s.Equal(0, voted.Downvotes)
	dir, ok := voted.Vote("user-1")
	s.Require().True(ok)
	s.Equal(model.VoteUp, dir)
}

func (s *ServiceSuite) TestVoteSameDirectionTogglesOff() {
	ann, err := s.service.Create(s.ctx, "Admin", "Title", "body")
	s.Require().NoError(err)

	_, err = s.service.Vote(s.ctx, ann.ID, "user-1", model.VoteUp)
	s.Require().NoError(err)
	voted, err := s.service.Vote(s.ctx, ann.ID, "user-1", model.VoteUp)
	s.Require().NoError(err)

	s.Equal(0, voted.Upvotes)
	s.Equal(0, voted.Downvotes)
	_, ok := voted.Vote("user-1")
	s.False(ok)
}

func (s *ServiceSuite) TestVoteOppositeDirectionMovesVote() {
	ann, err := s.service.Create(s.ctx, "Admin", "Title", "body")
	s.Require().NoError(err)

	_, err = s.service.Vote(s.ctx, ann.ID, "user-1", model.VoteUp)
	s.Require().NoError(err)
	voted, err := s.service.Vote(s.ctx, ann.ID, "user-1", model.VoteDown)
	s.Require().NoError(err)

	s.Equal(0, voted.Upvotes)
	s.Equal(1, voted.Downvotes)
	dir, ok := voted.Vote("user-1")
	s.Require().True(ok)
	s.Equal(model.VoteDown, dir)
}

func (s *ServiceSuite) TestVoteToggleSequenceEndsNeutral() {
	ann, err := s.service.Create(s.ctx, "Admin", "Title", "body")
	s.Require().NoError(err)

	// up, then down, then down again: back to neutral
	voted, err := s.service.Vote(s.ctx, ann.ID, "user-1", model.VoteUp)
	s.Require().NoError(err)
	s.Equal(1, voted.Upvotes)
	s.Equal(0, voted.Downvotes)

	voted, err = s.service.Vote(s.ctx, ann.ID, "user-1", model.VoteDown)
	s.Require().NoError(err)
	s.Equal(0, voted.Upvotes)
	s.Equal(1, voted.Downvotes)

	voted, err = s.service.Vote(s.ctx, ann.ID, "user-1", model.VoteDown)
	s.Require().NoError(err)
	s.Equal(0, voted.Upvotes)
	s.Equal(0, voted.Downvotes)
	_, ok := voted.Vote("user-1")
	s.False(ok)
}

func (s *ServiceSuite) TestVotesFromDifferentUsersAccumulate() {
	ann, err := s.service.Create(s.ctx, "Admin", "Title", "body")
	s.Require().NoError(err)

	_, err = s.service.Vote(s.ctx, ann.ID, "user-1", model.VoteUp)
	s.Require().NoError(err)
	_, err = s.service.Vote(s.ctx, ann.ID, "user-2", model.VoteUp)
	s.Require().NoError(err)
	voted, err := s.service.Vote(s.ctx, ann.ID, "user-3", model.VoteDown)
	s.Require().NoError(err)

	s.Equal(2, voted.Upvotes)
	s.Equal(1, voted.Downvotes)
}

func (s *ServiceSuite) TestVoteUnknownAnnouncementFails() {
	_, err := s.service.Vote(s.ctx, "missing", "user-1", model.VoteUp)
	s.ErrorIs(err, model.ErrAnnouncementNotFound)
}

func (s *ServiceSuite) TestVoteCountersNeverGoNegative() {
	ann, err := s.service.Create(s.ctx, "Admin", "Title", "body")
	s.Require().NoError(err)

	// Corrupt counters below the vote map to simulate stale data
	announcements, err := s.storage.LoadAnnouncements(s.ctx)
	s.Require().NoError(err)
	for i := range announcements {
		if announcements[i].ID == ann.ID {
			announcements[i].VotesByUser = map[string]model.VoteDirection{"user-1": model.VoteUp}
			announcements[i].Upvotes = 0
		}
	}
	s.Require().NoError(s.storage.SaveAnnouncements(s.ctx, announcements))

	voted, err := s.service.Vote(s.ctx, ann.ID, "user-1", model.VoteUp)
	s.Require().NoError(err)
	s.Equal(0, voted.Upvotes)
	s.Equal(0, voted.Downvotes)
}

func (s *ServiceSuite) TestVotePersists() {
	ann, err := s.service.Create(s.ctx, "Admin", "Title", "body")
	s.Require().NoError(err)

	_, err = s.service.Vote(s.ctx, ann.ID, "user-1", model.VoteUp)
	s.Require().NoError(err)

	announcements, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	for _, a := range announcements {
		if a.ID == ann.ID {
			s.Equal(1, a.Upvotes)
			dir, ok := a.Vote("user-1")
			s.Require().True(ok)
			s.Equal(model.VoteUp, dir)
		}
	}
}

func (s *ServiceSuite) TestVotePublishesChange() {
	ann, err := s.service.Create(s.ctx, "Admin", "Title", "body")
	s.Require().NoError(err)

	_, err = s.service.Vote(s.ctx, ann.ID, "user-1", model.VoteUp)
	s.Require().NoError(err)

	last := s.published[len(s.published)-1]
	s.Equal(model.CollectionAnnouncements, last.Collection)
	s.Equal(model.ChangeUpdated, last.Op)
	s.Equal(string(ann.ID), last.EntityID)
}
