package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spiderxog/hub/internal/model"
	"github.com/spiderxog/hub/internal/storage/memory"
	"github.com/spiderxog/hub/internal/testutil"
)

type StoreSuite struct {
	suite.Suite
	storage *memory.Storage
	store   *Store
	ctx     context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.storage = memory.New()
	s.store = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

// LoadAll tests

func (s *StoreSuite) TestLoadAllSeedsReservedAdmin() {
	accounts, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(accounts, 1)
	s.Equal(ReservedAdminUsername, accounts[0].Username)
	s.Equal("Administrator", accounts[0].DisplayName)
	s.Equal(model.RoleAdmin, accounts[0].Role)
	s.False(accounts[0].IsOnline)
}

func (s *StoreSuite) TestLoadAllSeedsOnlyOnce() {
	_, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)

	accounts, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)

	s.Len(accounts, 1)
}

func (s *StoreSuite) TestLoadAllSeedPersists() {
	_, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)

	persisted, err := s.storage.LoadAccounts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(persisted, 1)
	s.Equal(ReservedAdminUsername, persisted[0].Username)
}

// Register tests

func (s *StoreSuite) TestRegisterSucceeds() {
	err := s.store.Register(s.ctx, model.Account{
		Username:    "alice",
		DisplayName: "Alice",
		Secret:      "hunter2",
		Role:        model.RoleUser,
	})
	s.Require().NoError(err)

	acc, err := s.store.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("Alice", acc.DisplayName)
}

func (s *StoreSuite) TestRegisterStoresLowercasedUsername() {
	err := s.store.Register(s.ctx, model.Account{
		Username:    "  Alice  ",
		DisplayName: "Alice",
		Secret:      "hunter2",
		Role:        model.RoleUser,
	})
	s.Require().NoError(err)

	acc, err := s.store.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", acc.Username)
}

func (s *StoreSuite) TestRegisterRejectsCaseInsensitiveDuplicate() {
	err := s.store.Register(s.ctx, model.Account{
		Username:    "bob",
		DisplayName: "Bob",
		Secret:      "pass",
		Role:        model.RoleUser,
	})
	s.Require().NoError(err)

	err = s.store.Register(s.ctx, model.Account{
		Username:    "Bob",
		DisplayName: "Other Bob",
		Secret:      "pass2",
		Role:        model.RoleUser,
	})
	s.ErrorIs(err, model.ErrDuplicateUsername)
}

func (s *StoreSuite) TestRegisterRejectsReservedAdminUsername() {
	err := s.store.Register(s.ctx, model.Account{
		Username:    ReservedAdminUsername,
		DisplayName: "Impostor",
		Secret:      "pass",
		Role:        model.RoleUser,
	})
	s.ErrorIs(err, model.ErrDuplicateUsername)
}

// FindByUsername tests

func (s *StoreSuite) TestFindByUsernameIsCaseInsensitive() {
	err := s.store.Register(s.ctx, model.Account{
		Username:    "carol",
		DisplayName: "Carol",
		Secret:      "pass",
		Role:        model.RoleUser,
	})
	s.Require().NoError(err)

	acc, err := s.store.FindByUsername(s.ctx, "  CAROL ")
	s.Require().NoError(err)
	s.Equal("carol", acc.Username)
}

func (s *StoreSuite) TestFindByUsernameUnknownFails() {
	_, err := s.store.FindByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// SetOnlineStatus tests

func (s *StoreSuite) TestSetOnlineStatusUpdatesFlag() {
	err := s.store.Register(s.ctx, model.Account{
		Username:    "dave",
		DisplayName: "Dave",
		Secret:      "pass",
		Role:        model.RoleUser,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.store.SetOnlineStatus(s.ctx, "dave", true))

	acc, err := s.store.FindByUsername(s.ctx, "dave")
	s.Require().NoError(err)
	s.True(acc.IsOnline)

	s.Require().NoError(s.store.SetOnlineStatus(s.ctx, "dave", false))

	acc, err = s.store.FindByUsername(s.ctx, "dave")
	s.Require().NoError(err)
	s.False(acc.IsOnline)
}

func (s *StoreSuite) TestSetOnlineStatusUnknownUsernameIsNoop() {
	err := s.store.SetOnlineStatus(s.ctx, "ghost", true)
	s.NoError(err)
}

// Normalize tests

func (s *StoreSuite) TestNormalize() {
	s.Equal("alice", Normalize("  Alice "))
	s.Equal("bob@example.com", Normalize("Bob@Example.COM"))
}
