package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/auction"
	mAuction "github.com/x-xyz/nftmarket/domain/auction/mocks"
	mCustody "github.com/x-xyz/nftmarket/domain/custody/mocks"
	"github.com/x-xyz/nftmarket/domain/event"
	mEvent "github.com/x-xyz/nftmarket/domain/event/mocks"
	"github.com/x-xyz/nftmarket/domain/listing"
	mListing "github.com/x-xyz/nftmarket/domain/listing/mocks"
	"github.com/x-xyz/nftmarket/domain/mocks"
	mPricefeed "github.com/x-xyz/nftmarket/domain/pricefeed/mocks"
	"github.com/x-xyz/nftmarket/domain/settlement"
	mSettlement "github.com/x-xyz/nftmarket/domain/settlement/mocks"
	"github.com/x-xyz/nftmarket/service/txn"
)

const (
	market  = domain.Address("0xmarket")
	seller  = domain.Address("0xseller")
	bidderA = domain.Address("0xbiddera")
	bidderB = domain.Address("0xbidderb")
	nft     = domain.Address("0xnft")
	token   = domain.Currency("0xtoken")
)

var asset = domain.AssetId{Contract: nft, TokenId: "1"}

func amountOf(v int64) interface{} {
	return mock.MatchedBy(func(a domain.Amount) bool {
		return a.Cmp(domain.NewAmount(v)) == 0
	})
}

func valueOf(v int64) domain.Value {
	return domain.NewValue(decimal.NewFromInt(v))
}

type auctionSuite struct {
	suite.Suite

	now        time.Time
	repo       *mAuction.Repo
	escrow     *mAuction.EscrowRepo
	listings   *mListing.Repo
	seq        *mocks.SequenceRepo
	assets     *mCustody.AssetLedger
	pricefeed  *mPricefeed.UseCase
	settlement *mSettlement.UseCase
	event      *mEvent.UseCase
	im         auction.UseCase
}

func TestAuctionSuite(t *testing.T) {
	suite.Run(t, new(auctionSuite))
}

func (s *auctionSuite) SetupTest() {
	s.now = time.Unix(1700000000, 0)
	s.repo = &mAuction.Repo{}
	s.escrow = &mAuction.EscrowRepo{}
	s.listings = &mListing.Repo{}
	s.seq = &mocks.SequenceRepo{}
	s.assets = &mCustody.AssetLedger{}
	s.pricefeed = &mPricefeed.UseCase{}
	s.settlement = &mSettlement.UseCase{}
	s.event = &mEvent.UseCase{}
	s.im = New(&AuctionUseCaseCfg{
		Repo:        s.repo,
		EscrowRepo:  s.escrow,
		Listings:    s.listings,
		Sequence:    s.seq,
		Assets:      s.assets,
		PriceFeed:   s.pricefeed,
		Settlement:  s.settlement,
		Event:       s.event,
		Runner:      txn.NewRunner(txn.Direct{}),
		Marketplace: market,
		Now:         func() time.Time { return s.now },
	})
}

func (s *auctionSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.escrow.AssertExpectations(s.T())
	s.listings.AssertExpectations(s.T())
	s.seq.AssertExpectations(s.T())
	s.assets.AssertExpectations(s.T())
	s.pricefeed.AssertExpectations(s.T())
	s.settlement.AssertExpectations(s.T())
	s.event.AssertExpectations(s.T())
}

func (s *auctionSuite) running() *auction.Auction {
	return &auction.Auction{
		Id:          1,
		NftContract: nft,
		TokenId:     "1",
		Seller:      seller,
		StartPrice:  domain.NewAmount(1),
		EndTime:     s.now.Add(time.Hour),
		Active:      true,
	}
}

func (s *auctionSuite) withBid(bidder domain.Address, currency domain.Currency, amount, value int64) *auction.Auction {
	a := s.running()
	a.HighestBidder = bidder
	a.HighestBidCurrency = currency
	a.HighestBidAmount = domain.NewAmount(amount)
	a.HighestBidValue = valueOf(value)
	return a
}

func (s *auctionSuite) auctioned(as ...*auction.Auction) {
	s.repo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(as, nil).Once()
}

func (s *auctionSuite) listed(ls ...*listing.Listing) {
	s.listings.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(ls, nil).Once()
}

func (s *auctionSuite) TestCreate() {
	c := ctx.Background()
	s.assets.On("OwnerOf", mock.Anything, asset).Return(seller, nil).Once()
	s.assets.On("IsApprovedForOperator", mock.Anything, asset, market).Return(true, nil).Once()
	s.auctioned()
	s.listed()
	s.seq.On("Next", mock.Anything, domain.SequenceAuction).Return(int64(7), nil).Once()
	s.repo.On("Insert", mock.Anything, mock.MatchedBy(func(a *auction.Auction) bool {
		return a.Id == 7 && a.Active && a.EndTime.Equal(s.now.Add(2*time.Hour)) && !a.HasBid()
	})).Return(nil).Once()
	s.event.On("Emit", mock.Anything, mock.MatchedBy(func(e *event.Event) bool {
		return e.Type == event.TypeAuctionCreated && e.AuctionId == 7 && e.EndTime.Equal(s.now.Add(2*time.Hour))
	})).Return(nil).Once()

	a, err := s.im.Create(c, seller, asset, domain.NewAmount(1), 2)
	s.Require().NoError(err)
	s.Equal(int64(7), a.Id)
}

func (s *auctionSuite) TestCreateValidation() {
	c := ctx.Background()

	_, err := s.im.Create(c, seller, asset, domain.ZeroAmount, 1)
	s.ErrorIs(err, domain.ErrInvalidStartPrice)

	_, err = s.im.Create(c, seller, asset, domain.NewAmount(1), 0)
	s.ErrorIs(err, domain.ErrInvalidDuration)

	_, err = s.im.Create(c, seller, domain.AssetId{}, domain.NewAmount(1), 1)
	s.ErrorIs(err, domain.ErrInvalidAsset)

	s.assets.On("OwnerOf", mock.Anything, asset).Return(bidderA, nil).Once()
	_, err = s.im.Create(c, seller, asset, domain.NewAmount(1), 1)
	s.ErrorIs(err, domain.ErrNotOwner)

	s.assets.On("OwnerOf", mock.Anything, asset).Return(seller, nil).Once()
	s.assets.On("IsApprovedForOperator", mock.Anything, asset, market).Return(false, nil).Once()
	_, err = s.im.Create(c, seller, asset, domain.NewAmount(1), 1)
	s.ErrorIs(err, domain.ErrNotApproved)
}

func (s *auctionSuite) TestCreateEngagedAsset() {
	c := ctx.Background()
	s.assets.On("OwnerOf", mock.Anything, asset).Return(seller, nil).Times(2)
	s.assets.On("IsApprovedForOperator", mock.Anything, asset, market).Return(true, nil).Times(2)

	s.auctioned(s.running())
	_, err := s.im.Create(c, seller, asset, domain.NewAmount(1), 1)
	s.ErrorIs(err, domain.ErrAssetEngaged)

	s.auctioned()
	s.listed(&listing.Listing{Id: 4, NftContract: nft, TokenId: "1", Seller: seller, Price: domain.NewAmount(10), Active: true})
	_, err = s.im.Create(c, seller, asset, domain.NewAmount(1), 1)
	s.ErrorIs(err, domain.ErrAssetEngaged)
}

func (s *auctionSuite) TestFirstBid() {
	c := ctx.Background()
	payment := settlement.Payment{Currency: domain.NativeCurrency, NativeAmount: domain.NewAmount(5)}
	s.repo.On("FindOne", mock.Anything, int64(1)).Return(s.running(), nil).Once()
	s.pricefeed.On("NormalizedValue", mock.Anything, amountOf(5), domain.NativeCurrency).Return(valueOf(5), nil).Once()
	s.settlement.On("CheckPayment", mock.Anything, bidderA, payment, amountOf(0)).Return(nil).Once()
	s.repo.On("Patch", mock.Anything, int64(1), mock.MatchedBy(func(p *auction.PatchableAuction) bool {
		return *p.HighestBidder == bidderA && p.HighestBidAmount.Cmp(domain.NewAmount(5)) == 0 && p.Active == nil
	})).Return(nil).Once()
	s.event.On("Emit", mock.Anything, mock.MatchedBy(func(e *event.Event) bool {
		return e.Type == event.TypeBidPlaced && e.Bidder == bidderA && e.NormalizedAmount.Equal(valueOf(5))
	})).Return(nil).Once()
	s.settlement.On("Collect", mock.Anything, bidderA, payment).Return(nil).Once()

	s.NoError(s.im.PlaceBid(c, bidderA, 1, payment))
}

func (s *auctionSuite) TestOutbidCreditsEscrow() {
	c := ctx.Background()
	payment := settlement.Payment{Currency: token, TokenAmount: domain.NewAmount(3), NativeAmount: domain.ZeroAmount}
	prevKey := auction.EscrowKey{AuctionId: 1, Bidder: bidderA, Currency: domain.NativeCurrency}
	s.repo.On("FindOne", mock.Anything, int64(1)).Return(s.withBid(bidderA, domain.NativeCurrency, 5, 5), nil).Once()
	s.pricefeed.On("NormalizedValue", mock.Anything, amountOf(3), token).Return(valueOf(6), nil).Once()
	s.settlement.On("CheckPayment", mock.Anything, bidderB, payment, amountOf(0)).Return(nil).Once()
	s.escrow.On("FindOne", mock.Anything, prevKey).Return(&auction.EscrowEntry{EscrowKey: prevKey, RefundableAmount: domain.NewAmount(2)}, nil).Once()
	s.escrow.On("Upsert", mock.Anything, mock.MatchedBy(func(e *auction.EscrowEntry) bool {
		return e.EscrowKey == prevKey && e.RefundableAmount.Cmp(domain.NewAmount(7)) == 0
	})).Return(nil).Once()
	s.repo.On("Patch", mock.Anything, int64(1), mock.MatchedBy(func(p *auction.PatchableAuction) bool {
		return *p.HighestBidder == bidderB && *p.HighestBidCurrency == token
	})).Return(nil).Once()
	s.event.On("Emit", mock.Anything, mock.Anything).Return(nil).Once()
	s.settlement.On("Collect", mock.Anything, bidderB, payment).Return(nil).Once()

	s.NoError(s.im.PlaceBid(c, bidderB, 1, payment))
}

func (s *auctionSuite) TestBidRejects() {
	c := ctx.Background()
	native := settlement.Payment{Currency: domain.NativeCurrency, NativeAmount: domain.NewAmount(4)}

	ended := s.running()
	ended.EndTime = s.now
	s.repo.On("FindOne", mock.Anything, int64(2)).Return(ended, nil).Once()
	s.ErrorIs(s.im.PlaceBid(c, bidderA, 2, native), domain.ErrAuctionEnded)

	s.repo.On("FindOne", mock.Anything, int64(3)).Return(nil, domain.ErrNotFound).Once()
	s.ErrorIs(s.im.PlaceBid(c, bidderA, 3, native), domain.ErrNotActive)

	s.repo.On("FindOne", mock.Anything, int64(1)).Return(s.withBid(bidderA, domain.NativeCurrency, 5, 5), nil)
	s.ErrorIs(s.im.PlaceBid(c, seller, 1, native), domain.ErrSellerCannotBid)

	mixed := settlement.Payment{Currency: token, TokenAmount: domain.NewAmount(9), NativeAmount: domain.NewAmount(1)}
	s.ErrorIs(s.im.PlaceBid(c, bidderB, 1, mixed), domain.ErrUnexpectedNativeValue)

	s.pricefeed.On("NormalizedValue", mock.Anything, amountOf(4), domain.NativeCurrency).Return(valueOf(4), nil).Once()
	s.ErrorIs(s.im.PlaceBid(c, bidderB, 1, native), domain.ErrBidTooLow)

	equal := settlement.Payment{Currency: domain.NativeCurrency, NativeAmount: domain.NewAmount(5)}
	s.pricefeed.On("NormalizedValue", mock.Anything, amountOf(5), domain.NativeCurrency).Return(valueOf(5), nil).Once()
	s.ErrorIs(s.im.PlaceBid(c, bidderB, 1, equal), domain.ErrBidTooLow)
}

func (s *auctionSuite) TestBidAtStartPriceIsTooLow() {
	c := ctx.Background()
	payment := settlement.Payment{Currency: domain.NativeCurrency, NativeAmount: domain.NewAmount(1)}
	s.repo.On("FindOne", mock.Anything, int64(1)).Return(s.running(), nil).Once()
	s.pricefeed.On("NormalizedValue", mock.Anything, amountOf(1), domain.NativeCurrency).Return(valueOf(1), nil).Once()

	s.ErrorIs(s.im.PlaceBid(c, bidderA, 1, payment), domain.ErrBidTooLow)
}

func (s *auctionSuite) TestWithdrawBid() {
	c := ctx.Background()
	key := auction.EscrowKey{AuctionId: 1, Bidder: bidderA, Currency: token}
	s.escrow.On("FindOne", mock.Anything, key).Return(&auction.EscrowEntry{EscrowKey: key, RefundableAmount: domain.NewAmount(5)}, nil).Once()
	s.escrow.On("Upsert", mock.Anything, mock.MatchedBy(func(e *auction.EscrowEntry) bool {
		return e.EscrowKey == key && e.RefundableAmount.IsZero()
	})).Return(nil).Once()
	s.settlement.On("Refund", mock.Anything, token, amountOf(5), bidderA).Return(nil).Once()

	amt, err := s.im.WithdrawBid(c, "0xBidderA", 1, "0xTOKEN")
	s.Require().NoError(err)
	s.Equal("5", amt.String())

	s.escrow.On("FindOne", mock.Anything, key).Return(&auction.EscrowEntry{EscrowKey: key, RefundableAmount: domain.ZeroAmount}, nil).Once()
	_, err = s.im.WithdrawBid(c, bidderA, 1, token)
	s.ErrorIs(err, domain.ErrNoPendingReturn)

	other := auction.EscrowKey{AuctionId: 1, Bidder: bidderB, Currency: domain.NativeCurrency}
	s.escrow.On("FindOne", mock.Anything, other).Return(nil, nil).Once()
	_, err = s.im.WithdrawBid(c, bidderB, 1, domain.NativeCurrency)
	s.ErrorIs(err, domain.ErrNoPendingReturn)
}

func (s *auctionSuite) TestEndAuctionWithWinner() {
	c := ctx.Background()
	a := s.withBid(bidderA, domain.NativeCurrency, 5, 5)
	a.EndTime = s.now.Add(-time.Second)
	s.repo.On("FindOne", mock.Anything, int64(1)).Return(a, nil).Once()
	s.repo.On("Patch", mock.Anything, int64(1), mock.MatchedBy(func(p *auction.PatchableAuction) bool {
		return p.Active != nil && !*p.Active && p.HighestBidder == nil
	})).Return(nil).Once()
	s.assets.On("OwnerOf", mock.Anything, asset).Return(seller, nil).Once()
	s.assets.On("IsApprovedForOperator", mock.Anything, asset, market).Return(true, nil).Once()
	s.event.On("Emit", mock.Anything, mock.MatchedBy(func(e *event.Event) bool {
		return e.Type == event.TypeAuctionEnded && e.Winner == bidderA && *e.Currency == domain.NativeCurrency && e.Amount.Cmp(domain.NewAmount(5)) == 0
	})).Return(nil).Once()
	s.settlement.On("Payout", mock.Anything, domain.NativeCurrency, amountOf(5), seller).Return(&settlement.Receipt{}, nil).Once()
	s.assets.On("Transfer", mock.Anything, market, asset, seller, bidderA).Return(nil).Once()

	s.NoError(s.im.EndAuction(c, 1))
}

func (s *auctionSuite) TestEndAuctionRefundsWhenAssetMoved() {
	c := ctx.Background()
	key := auction.EscrowKey{AuctionId: 1, Bidder: bidderA, Currency: token}
	ended := func() *auction.Auction {
		a := s.withBid(bidderA, token, 5, 10)
		a.EndTime = s.now
		return a
	}
	refunded := func(e *auction.EscrowEntry) bool {
		return e.EscrowKey == key && e.RefundableAmount.Cmp(domain.NewAmount(5)) == 0
	}
	noSale := mock.MatchedBy(func(e *event.Event) bool {
		return e.Type == event.TypeAuctionEnded && e.Winner == domain.EmptyAddress && e.Currency == nil && e.Amount.IsZero()
	})

	// sold elsewhere
	s.repo.On("FindOne", mock.Anything, int64(1)).Return(ended(), nil).Once()
	s.repo.On("Patch", mock.Anything, int64(1), mock.Anything).Return(nil).Once()
	s.assets.On("OwnerOf", mock.Anything, asset).Return(bidderB, nil).Once()
	s.escrow.On("FindOne", mock.Anything, key).Return(nil, nil).Once()
	s.escrow.On("Upsert", mock.Anything, mock.MatchedBy(refunded)).Return(nil).Once()
	s.event.On("Emit", mock.Anything, noSale).Return(nil).Once()
	s.NoError(s.im.EndAuction(c, 1))

	// approval revoked
	s.repo.On("FindOne", mock.Anything, int64(1)).Return(ended(), nil).Once()
	s.repo.On("Patch", mock.Anything, int64(1), mock.Anything).Return(nil).Once()
	s.assets.On("OwnerOf", mock.Anything, asset).Return(seller, nil).Once()
	s.assets.On("IsApprovedForOperator", mock.Anything, asset, market).Return(false, nil).Once()
	s.escrow.On("FindOne", mock.Anything, key).Return(nil, nil).Once()
	s.escrow.On("Upsert", mock.Anything, mock.MatchedBy(refunded)).Return(nil).Once()
	s.event.On("Emit", mock.Anything, noSale).Return(nil).Once()
	s.NoError(s.im.EndAuction(c, 1))

	// burned
	s.repo.On("FindOne", mock.Anything, int64(1)).Return(ended(), nil).Once()
	s.repo.On("Patch", mock.Anything, int64(1), mock.Anything).Return(nil).Once()
	s.assets.On("OwnerOf", mock.Anything, asset).Return(domain.EmptyAddress, domain.ErrNonexistentAsset).Once()
	s.escrow.On("FindOne", mock.Anything, key).Return(nil, nil).Once()
	s.escrow.On("Upsert", mock.Anything, mock.MatchedBy(refunded)).Return(nil).Once()
	s.event.On("Emit", mock.Anything, noSale).Return(nil).Once()
	s.NoError(s.im.EndAuction(c, 1))
}

func (s *auctionSuite) TestEndAuctionLedgerError() {
	c := ctx.Background()
	a := s.withBid(bidderA, domain.NativeCurrency, 5, 5)
	a.EndTime = s.now
	rpcErr := errors.New("rpc down")
	s.repo.On("FindOne", mock.Anything, int64(1)).Return(a, nil).Once()
	s.repo.On("Patch", mock.Anything, int64(1), mock.Anything).Return(nil).Once()
	s.assets.On("OwnerOf", mock.Anything, asset).Return(domain.EmptyAddress, rpcErr).Once()

	s.ErrorIs(s.im.EndAuction(c, 1), rpcErr)
}

func (s *auctionSuite) TestEndAuctionWithoutBids() {
	c := ctx.Background()
	a := s.running()
	a.EndTime = s.now
	s.repo.On("FindOne", mock.Anything, int64(1)).Return(a, nil).Once()
	s.repo.On("Patch", mock.Anything, int64(1), mock.Anything).Return(nil).Once()
	s.event.On("Emit", mock.Anything, mock.MatchedBy(func(e *event.Event) bool {
		return e.Type == event.TypeAuctionEnded && e.Winner == domain.EmptyAddress && e.Currency == nil && e.Amount.IsZero()
	})).Return(nil).Once()

	s.NoError(s.im.EndAuction(c, 1))
}

func (s *auctionSuite) TestEndAuctionTooEarly() {
	c := ctx.Background()
	s.repo.On("FindOne", mock.Anything, int64(1)).Return(s.running(), nil).Once()
	s.ErrorIs(s.im.EndAuction(c, 1), domain.ErrNotYetEnded)

	done := s.running()
	done.Active = false
	s.repo.On("FindOne", mock.Anything, int64(2)).Return(done, nil).Once()
	s.ErrorIs(s.im.EndAuction(c, 2), domain.ErrNotActive)
}

func (s *auctionSuite) TestPendingReturn() {
	c := ctx.Background()
	key := auction.EscrowKey{AuctionId: 1, Bidder: bidderA, Currency: domain.NativeCurrency}
	s.escrow.On("FindOne", mock.Anything, key).Return(nil, nil).Once()

	amt, err := s.im.PendingReturn(c, 1, bidderA, "")
	s.Require().NoError(err)
	s.True(amt.IsZero())
}
