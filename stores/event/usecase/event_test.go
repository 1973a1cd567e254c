package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/event"
	mEvent "github.com/x-xyz/nftmarket/domain/event/mocks"
	mDomain "github.com/x-xyz/nftmarket/domain/mocks"
	"github.com/x-xyz/nftmarket/service/txn"
)

func setup(t *testing.T) (*mEvent.Repo, *mDomain.SequenceRepo, *mEvent.Publisher, event.UseCase) {
	repo := &mEvent.Repo{}
	seq := &mDomain.SequenceRepo{}
	pub := &mEvent.Publisher{}
	now := time.Unix(1700000000, 0)
	im := New(&EventUseCaseCfg{
		Repo:      repo,
		Sequence:  seq,
		Publisher: pub,
		Now:       func() time.Time { return now },
	})
	return repo, seq, pub, im
}

func TestEmitPublishesAfterCommit(t *testing.T) {
	req := require.New(t)
	repo, seq, pub, im := setup(t)
	seq.On("Next", mock.Anything, domain.SequenceEvent).Return(int64(5), nil).Once()
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(e *event.Event) bool {
		return e.Seq == 5 && e.Id != "" && e.Type == event.TypeDelisted
	})).Return(nil).Once()

	published := false
	pub.On("Publish", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		published = true
	}).Return(nil).Once()

	runner := txn.NewRunner(txn.Direct{})
	err := runner.Run(ctx.Background(), "test", func(c ctx.Ctx) error {
		if err := im.Emit(c, event.Delisted(1)); err != nil {
			return err
		}
		req.False(published)
		return nil
	})
	req.NoError(err)
	req.True(published)
	pub.AssertExpectations(t)
}

func TestEmitDroppedOnRollback(t *testing.T) {
	req := require.New(t)
	repo, seq, pub, im := setup(t)
	seq.On("Next", mock.Anything, domain.SequenceEvent).Return(int64(1), nil).Once()
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	boom := errors.New("boom")
	runner := txn.NewRunner(txn.Direct{})
	err := runner.Run(ctx.Background(), "test", func(c ctx.Ctx) error {
		if err := im.Emit(c, event.Delisted(1)); err != nil {
			return err
		}
		return boom
	})
	req.ErrorIs(err, boom)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestEmitInsertFailed(t *testing.T) {
	req := require.New(t)
	repo, seq, pub, im := setup(t)
	seq.On("Next", mock.Anything, domain.SequenceEvent).Return(int64(1), nil).Once()
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("dup")).Once()

	req.Error(im.Emit(ctx.Background(), event.Delisted(1)))
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
