package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/pricefeed"
	mPricefeed "github.com/x-xyz/nftmarket/domain/pricefeed/mocks"
	mSettlement "github.com/x-xyz/nftmarket/domain/settlement/mocks"
	"github.com/x-xyz/nftmarket/service/chainlink"
	mChainlink "github.com/x-xyz/nftmarket/service/chainlink/mocks"
	"github.com/x-xyz/nftmarket/service/txn"
)

const (
	chainId  = domain.ChainId(1)
	admin    = domain.Address("0xadmin")
	someone  = domain.Address("0xsomeone")
	feed     = domain.Address("0xfeed")
	tokenA   = domain.Currency("0xtoken")
	decimals = 8
)

type priceFeedSuite struct {
	suite.Suite

	now        time.Time
	repo       *mPricefeed.Repo
	oracle     *mChainlink.Chainlink
	settlement *mSettlement.UseCase
	im         pricefeed.UseCase
}

func TestPriceFeedSuite(t *testing.T) {
	suite.Run(t, new(priceFeedSuite))
}

func (s *priceFeedSuite) SetupTest() {
	s.now = time.Unix(1700000000, 0)
	s.repo = &mPricefeed.Repo{}
	s.oracle = &mChainlink.Chainlink{}
	s.settlement = &mSettlement.UseCase{}
	s.settlement.On("IsFeeRecipient", mock.Anything, admin).Return(true, nil).Maybe()
	s.settlement.On("IsFeeRecipient", mock.Anything, someone).Return(false, nil).Maybe()
	s.im = New(&PriceFeedUseCaseCfg{
		Repo:           s.repo,
		Oracle:         s.oracle,
		Settlement:     s.settlement,
		Runner:         txn.NewRunner(txn.Direct{}),
		ChainId:        chainId,
		NativeDecimals: 18,
		MaxQuoteAge:    time.Hour,
		Now:            func() time.Time { return s.now },
	})
}

func (s *priceFeedSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.oracle.AssertExpectations(s.T())
}

func (s *priceFeedSuite) bind(answer int64, updatedAt time.Time) {
	s.repo.On("FindOne", mock.Anything, tokenA).Return(&pricefeed.Binding{Currency: tokenA, Feed: feed}, nil)
	s.oracle.On("LatestRoundData", mock.Anything, chainId, feed).Return(&chainlink.Quote{
		RoundId:   big.NewInt(1),
		Answer:    big.NewInt(answer),
		Decimals:  decimals,
		UpdatedAt: updatedAt,
		Valid:     true,
	}, nil)
}

func (s *priceFeedSuite) TestRequiredAmountNative() {
	c := ctx.Background()
	amount, err := s.im.RequiredAmount(c, domain.NewAmount(2), domain.NativeCurrency)
	s.Require().NoError(err)
	want, _ := new(big.Int).SetString("2000000000000000000", 10)
	s.Equal(0, amount.BigInt().Cmp(want))
}

func (s *priceFeedSuite) TestRequiredAmountToken() {
	c := ctx.Background()
	// one token is worth 2 reference units
	s.bind(2_00000000, s.now.Add(-time.Minute))

	amount, err := s.im.RequiredAmount(c, domain.NewAmount(5), tokenA)
	s.Require().NoError(err)
	s.Equal("2", amount.String())

	value, err := s.im.NormalizedValue(c, domain.NewAmount(3), tokenA)
	s.Require().NoError(err)
	s.Equal("6", value.String())
}

func (s *priceFeedSuite) TestRequiredAmountNoFeed() {
	c := ctx.Background()
	s.repo.On("FindOne", mock.Anything, tokenA).Return(nil, nil).Once()

	_, err := s.im.RequiredAmount(c, domain.NewAmount(1), tokenA)
	s.ErrorIs(err, domain.ErrNoPriceFeed)
}

func (s *priceFeedSuite) TestRequiredAmountInvalidAnswer() {
	c := ctx.Background()
	s.bind(0, s.now)

	_, err := s.im.RequiredAmount(c, domain.NewAmount(1), tokenA)
	s.ErrorIs(err, domain.ErrInvalidFeed)
}

func (s *priceFeedSuite) TestRequiredAmountOracleError() {
	c := ctx.Background()
	s.repo.On("FindOne", mock.Anything, tokenA).Return(&pricefeed.Binding{Currency: tokenA, Feed: feed}, nil).Once()
	s.oracle.On("LatestRoundData", mock.Anything, chainId, feed).Return(nil, errors.New("rpc down")).Once()

	_, err := s.im.RequiredAmount(c, domain.NewAmount(1), tokenA)
	s.ErrorIs(err, domain.ErrInvalidFeed)
	s.Equal(domain.KindExternal, domain.KindOf(err))
}

func (s *priceFeedSuite) TestRequiredAmountStale() {
	c := ctx.Background()
	s.bind(1_00000000, s.now.Add(-2*time.Hour))

	_, err := s.im.RequiredAmount(c, domain.NewAmount(1), tokenA)
	s.ErrorIs(err, domain.ErrStaleQuote)
}

func (s *priceFeedSuite) TestNormalizedValueNative() {
	c := ctx.Background()
	value, err := s.im.NormalizedValue(c, domain.NewAmount(1500000000000000000), domain.NativeCurrency)
	s.Require().NoError(err)
	s.Equal("1.5", value.String())
}

func (s *priceFeedSuite) TestSetPriceFeed() {
	c := ctx.Background()
	s.oracle.On("LatestRoundData", mock.Anything, chainId, feed).Return(&chainlink.Quote{Answer: big.NewInt(100), Valid: true}, nil).Once()
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(b *pricefeed.Binding) bool {
		return b.Currency == tokenA && b.Feed == feed && b.UpdatedBy == admin && b.UpdatedAt.Equal(s.now)
	})).Return(nil).Once()

	s.NoError(s.im.SetPriceFeed(c, admin, tokenA, feed))
}

func (s *priceFeedSuite) TestSetPriceFeedRejected() {
	c := ctx.Background()

	s.ErrorIs(s.im.SetPriceFeed(c, someone, tokenA, feed), domain.ErrNotFeeRecipient)
	s.ErrorIs(s.im.SetPriceFeed(c, admin, domain.NativeCurrency, feed), domain.ErrInvalidCurrency)
	s.ErrorIs(s.im.SetPriceFeed(c, admin, tokenA, ""), domain.ErrInvalidPriceFeed)

	s.oracle.On("LatestRoundData", mock.Anything, chainId, feed).Return(&chainlink.Quote{Answer: big.NewInt(-1)}, nil).Once()
	s.ErrorIs(s.im.SetPriceFeed(c, admin, tokenA, feed), domain.ErrInvalidPriceFeed)
	s.repo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *priceFeedSuite) TestRemovePriceFeed() {
	c := ctx.Background()
	s.repo.On("FindOne", mock.Anything, tokenA).Return(nil, nil).Once()
	s.ErrorIs(s.im.RemovePriceFeed(c, admin, tokenA), domain.ErrNoPriceFeed)

	s.repo.On("FindOne", mock.Anything, tokenA).Return(&pricefeed.Binding{Currency: tokenA, Feed: feed}, nil).Once()
	s.repo.On("Remove", mock.Anything, tokenA).Return(nil).Once()
	s.NoError(s.im.RemovePriceFeed(c, admin, tokenA))
}
