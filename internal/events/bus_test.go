package events

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spiderxog/hub/internal/model"
	"github.com/spiderxog/hub/internal/testutil"
)

type BusSuite struct {
	suite.Suite
	bus *Bus
}

func TestBusSuite(t *testing.T) {
	suite.Run(t, new(BusSuite))
}

func (s *BusSuite) SetupTest() {
	s.bus = NewBus(testutil.NopLogger())
}

func (s *BusSuite) TestPublishDeliversToAllSubscribers() {
	var first, second []model.ChangeEvent
	s.bus.Subscribe(func(evt model.ChangeEvent) { first = append(first, evt) })
	s.bus.Subscribe(func(evt model.ChangeEvent) { second = append(second, evt) })

	evt := model.ChangeEvent{
		Collection: model.CollectionChat,
		Op:         model.ChangeCreated,
		EntityID:   "123",
	}
	s.bus.Publish(evt)

	s.Require().Len(first, 1)
	s.Require().Len(second, 1)
	s.Equal(evt, first[0])
	s.Equal(evt, second[0])
}

func (s *BusSuite) TestPublishWithNoSubscribersIsNoop() {
	s.NotPanics(func() {
		s.bus.Publish(model.ChangeEvent{Collection: model.CollectionAccounts})
	})
}

func (s *BusSuite) TestUnsubscribeStopsDelivery() {
	var received []model.ChangeEvent
	unsubscribe := s.bus.Subscribe(func(evt model.ChangeEvent) { received = append(received, evt) })

	s.bus.Publish(model.ChangeEvent{Collection: model.CollectionChat})
	unsubscribe()
	s.bus.Publish(model.ChangeEvent{Collection: model.CollectionChat})

	s.Len(received, 1)
}

func (s *BusSuite) TestUnsubscribeTwiceIsNoop() {
	unsubscribe := s.bus.Subscribe(func(model.ChangeEvent) {})

	unsubscribe()
	s.NotPanics(unsubscribe)
	s.Equal(0, s.bus.SubscriberCount())
}

func (s *BusSuite) TestSubscriberCount() {
	s.Equal(0, s.bus.SubscriberCount())

	unsubA := s.bus.Subscribe(func(model.ChangeEvent) {})
	s.bus.Subscribe(func(model.ChangeEvent) {})
	s.Equal(2, s.bus.SubscriberCount())

	unsubA()
	s.Equal(1, s.bus.SubscriberCount())
}
