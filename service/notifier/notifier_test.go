package notifier

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain/event"
	"github.com/x-xyz/nftmarket/service/redis/mocks"
)

type notifierSuite struct {
	suite.Suite
	redis *mocks.Service
	im    Notifier
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(notifierSuite))
}

func (s *notifierSuite) SetupTest() {
	s.redis = &mocks.Service{}
	s.im = New(&Cfg{Redis: s.redis, Channel: "market", Workers: 1, Backoff: time.Millisecond})
}

func (s *notifierSuite) TearDownTest() {
	s.im.Close()
}

func (s *notifierSuite) TestPublish() {
	e := &event.Event{Id: "e1", Seq: 7, Type: event.TypeListed, ListingId: 1}
	payload, err := json.Marshal(e)
	s.Require().NoError(err)

	done := make(chan struct{})
	s.redis.On("Publish", mock.Anything, "events:market", payload).Return(1, nil).Once().Run(func(mock.Arguments) {
		close(done)
	})

	s.NoError(s.im.Publish(ctx.Background(), e))
	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("event not published")
	}
}

func (s *notifierSuite) TestPublishRetries() {
	e := &event.Event{Id: "e2", Seq: 8, Type: event.TypeSold}

	done := make(chan struct{})
	s.redis.On("Publish", mock.Anything, "events:market", mock.Anything).Return(0, xerrors.New("conn reset")).Twice()
	s.redis.On("Publish", mock.Anything, "events:market", mock.Anything).Return(1, nil).Once().Run(func(mock.Arguments) {
		close(done)
	})

	s.NoError(s.im.Publish(ctx.Background(), e))
	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("event not published after retries")
	}
	s.redis.AssertNumberOfCalls(s.T(), "Publish", 3)
}
