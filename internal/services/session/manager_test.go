package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/spiderxog/hub/internal/dependencies/mocks"
	"github.com/spiderxog/hub/internal/model"
	"github.com/spiderxog/hub/internal/services/accounts"
	"github.com/spiderxog/hub/internal/storage/memory"
	"github.com/spiderxog/hub/internal/testutil"
)

type ManagerSuite struct {
	suite.Suite
	storage  *memory.Storage
	accounts *accounts.Store
	clock    *mocks.MockClock
	random   *mocks.MockRandom
	manager  *Manager
	ctx      context.Context
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.storage = memory.New()
	s.accounts = accounts.New(s.storage, testutil.NopLogger())
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.random.QueueString("aaaaaaaaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbbbbbbbb", "cccccccccccccccccccccc")
	s.manager = New(s.accounts, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ManagerSuite) register(username, name, secret string) {
	s.Require().NoError(s.manager.Register(s.ctx, username, name, secret))
}

// Register tests

func (s *ManagerSuite) TestRegisterSucceeds() {
	err := s.manager.Register(s.ctx, "alice", "Alice", "hunter2")
	s.Require().NoError(err)

	acc, err := s.accounts.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.RoleUser, acc.Role)
	s.False(acc.IsOnline)
}

func (s *ManagerSuite) TestRegisterDoesNotSignIn() {
	s.register("alice", "Alice", "hunter2")

	s.Equal(0, s.manager.ActiveCount())
}

func (s *ManagerSuite) TestRegisterRequiresAllFields() {
	s.ErrorIs(s.manager.Register(s.ctx, "", "Alice", "hunter2"), model.ErrMissingFields)
	s.ErrorIs(s.manager.Register(s.ctx, "alice", "   ", "hunter2"), model.ErrMissingFields)
	s.ErrorIs(s.manager.Register(s.ctx, "alice", "Alice", "  "), model.ErrMissingFields)
}

func (s *ManagerSuite) TestRegisterRejectsDuplicate() {
	s.register("alice", "Alice", "hunter2")

	err := s.manager.Register(s.ctx, "ALICE", "Other Alice", "secret")
	s.ErrorIs(err, model.ErrDuplicateUsername)
}

// SignIn tests

func (s *ManagerSuite) TestSignInSucceeds() {
	s.register("alice", "Alice", "hunter2")

	sess, err := s.manager.SignIn(s.ctx, "alice", "hunter2")
	s.Require().NoError(err)

	s.Equal(model.SessionID("sess_aaaaaaaaaaaaaaaaaaaaaa"), sess.ID)
	s.Equal("alice", sess.Username)
	s.Equal("Alice", sess.DisplayName)
	s.Equal(model.RoleUser, sess.Role)
	s.Equal(s.clock.Now(), sess.StartedAt)
}

func (s *ManagerSuite) TestSignInMarksAccountOnline() {
	s.register("alice", "Alice", "hunter2")

	_, err := s.manager.SignIn(s.ctx, "alice", "hunter2")
	s.Require().NoError(err)

	acc, err := s.accounts.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.True(acc.IsOnline)
}

func (s *ManagerSuite) TestSignInIsCaseInsensitive() {
	s.register("alice", "Alice", "hunter2")

	sess, err := s.manager.SignIn(s.ctx, "  ALICE ", "hunter2")
	s.Require().NoError(err)
	s.Equal("alice", sess.Username)
}

func (s *ManagerSuite) TestSignInUnknownAccountFails() {
	_, err := s.manager.SignIn(s.ctx, "nobody", "hunter2")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ManagerSuite) TestSignInWrongSecretFails() {
	s.register("alice", "Alice", "hunter2")

	_, err := s.manager.SignIn(s.ctx, "alice", "wrong")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ManagerSuite) TestSignInFailuresAreIndistinguishable() {
	s.register("alice", "Alice", "hunter2")

	_, unknownErr := s.manager.SignIn(s.ctx, "nobody", "hunter2")
	_, wrongErr := s.manager.SignIn(s.ctx, "alice", "wrong")

	s.Equal(unknownErr, wrongErr)
}

func (s *ManagerSuite) TestSignInReservedAdmin() {
	sess, err := s.manager.SignIn(s.ctx, accounts.ReservedAdminUsername, "admin1233")
	s.Require().NoError(err)

	s.Equal(model.RoleAdmin, sess.Role)
	s.Equal("Administrator", sess.DisplayName)
	s.True(sess.IsAdmin())
}

// SignOut tests

func (s *ManagerSuite) TestSignOutEndsSession() {
	s.register("alice", "Alice", "hunter2")
	sess, err := s.manager.SignIn(s.ctx, "alice", "hunter2")
	s.Require().NoError(err)

	s.Require().NoError(s.manager.SignOut(s.ctx, sess))

	_, err = s.manager.Validate(sess.ID)
	s.ErrorIs(err, model.ErrInvalidSession)
}

func (s *ManagerSuite) TestSignOutMarksAccountOffline() {
	s.register("alice", "Alice", "hunter2")
	sess, err := s.manager.SignIn(s.ctx, "alice", "hunter2")
	s.Require().NoError(err)

	s.Require().NoError(s.manager.SignOut(s.ctx, sess))

	acc, err := s.accounts.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.False(acc.IsOnline)
}

func (s *ManagerSuite) TestSignOutNilSessionIsNoop() {
	s.NoError(s.manager.SignOut(s.ctx, nil))
}

func (s *ManagerSuite) TestSignOutTwiceIsNoop() {
	s.register("alice", "Alice", "hunter2")
	sess, err := s.manager.SignIn(s.ctx, "alice", "hunter2")
	s.Require().NoError(err)

	s.Require().NoError(s.manager.SignOut(s.ctx, sess))
	s.NoError(s.manager.SignOut(s.ctx, sess))
}

// Validate tests

func (s *ManagerSuite) TestValidateSucceeds() {
	s.register("alice", "Alice", "hunter2")
	sess, err := s.manager.SignIn(s.ctx, "alice", "hunter2")
	s.Require().NoError(err)

	validated, err := s.manager.Validate(sess.ID)
	s.Require().NoError(err)
	s.Equal(sess.Username, validated.Username)
}

func (s *ManagerSuite) TestValidateUnknownIDFails() {
	_, err := s.manager.Validate("sess_unknown")
	s.ErrorIs(err, model.ErrInvalidSession)
}

// ActiveCount tests

func (s *ManagerSuite) TestActiveCountTracksSessions() {
	s.register("alice", "Alice", "hunter2")
	s.register("bob", "Bob", "pass")

	s.Equal(0, s.manager.ActiveCount())

	aliceSess, err := s.manager.SignIn(s.ctx, "alice", "hunter2")
	s.Require().NoError(err)
	_, err = s.manager.SignIn(s.ctx, "bob", "pass")
	s.Require().NoError(err)
	s.Equal(2, s.manager.ActiveCount())

	s.Require().NoError(s.manager.SignOut(s.ctx, aliceSess))
	s.Equal(1, s.manager.ActiveCount())
}
