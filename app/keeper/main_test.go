package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmarket/base/counter"
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/auction"
	"github.com/x-xyz/nftmarket/domain/auction/mocks"
)

type keeperSuite struct {
	suite.Suite

	c       ctx.Ctx
	auction *mocks.UseCase
	k       *keeper
}

func TestKeeperSuite(t *testing.T) {
	suite.Run(t, new(keeperSuite))
}

func (s *keeperSuite) SetupTest() {
	s.c = ctx.Background()
	s.auction = mocks.NewUseCase(s.T())
	s.k = &keeper{
		auction:  s.auction,
		interval: time.Minute,
		ended:    counter.NewCounter(),
		failed:   counter.NewCounter(),
	}
}

func (s *keeperSuite) TestSweepEndsDueAuctions() {
	var gotOpts auction.FindAllOptions
	s.auction.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(func(_ ctx.Ctx, opts ...auction.FindAllOptionsFunc) []*auction.Auction {
			gotOpts, _ = auction.GetFindAllOptions(opts...)
			return []*auction.Auction{{Id: 1, Active: true}, {Id: 2, Active: true}}
		}, nil).Once()
	s.auction.On("EndAuction", mock.Anything, int64(1)).Return(nil).Once()
	s.auction.On("EndAuction", mock.Anything, int64(2)).Return(domain.ErrNotYetEnded).Once()

	s.k.sweep(s.c)

	s.Require().NotNil(gotOpts.Active)
	s.True(*gotOpts.Active)
	s.NotNil(gotOpts.EndedBefore)
	s.Equal(1, s.k.ended.Count())
	s.Equal(1, s.k.failed.Count())
}

func (s *keeperSuite) TestSweepStopsOnQueryError() {
	s.auction.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrNotFound).Once()

	s.k.sweep(s.c)

	s.Equal(0, s.k.ended.Count())
	s.Equal(0, s.k.failed.Count())
}
