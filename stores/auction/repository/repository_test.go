package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/auction"
	"github.com/x-xyz/nftmarket/service/query"
	"github.com/x-xyz/nftmarket/service/query/mocks"
)

func TestFindAllEndedBefore(t *testing.T) {
	req := require.New(t)
	q := &mocks.Mongo{}
	now := time.Unix(1700000000, 0)
	want := bson.M{
		"id":      bson.M{"$gt": int64(0)},
		"active":  true,
		"endTime": bson.M{"$lte": now},
	}
	q.On("Search", mock.Anything, domain.TableAuctions, 0, 0, []string{"id"}, want, mock.Anything).Return(nil).Once()

	_, err := New(q).FindAll(ctx.Background(), auction.WithActive(true), auction.WithEndedBefore(now))
	req.NoError(err)
	q.AssertExpectations(t)
}

func TestFindAllByAsset(t *testing.T) {
	req := require.New(t)
	q := &mocks.Mongo{}
	want := bson.M{
		"id":          bson.M{"$gt": int64(0)},
		"nftContract": domain.Address("0xnft"),
		"tokenId":     domain.TokenId("7"),
		"active":      true,
	}
	q.On("Search", mock.Anything, domain.TableAuctions, 0, 1, []string{"id"}, want, mock.Anything).Return(nil).Once()

	_, err := New(q).FindAll(ctx.Background(),
		auction.WithAsset(domain.AssetId{Contract: "0xNFT", TokenId: "7"}),
		auction.WithActive(true),
		auction.WithPagination(0, 1),
	)
	req.NoError(err)
	q.AssertExpectations(t)
}

func TestPatchNormalizesBidder(t *testing.T) {
	req := require.New(t)
	q := &mocks.Mongo{}
	bidder := domain.Address("0xBIDDER")
	q.On("Patch", mock.Anything, domain.TableAuctions, bson.M{"id": int64(1)}, bson.M{"highestBidder": domain.Address("0xbidder")}).Return(nil).Once()
	q.On("Patch", mock.Anything, domain.TableAuctions, bson.M{"id": int64(2)}, mock.Anything).Return(query.ErrNotFound).Once()

	req.NoError(New(q).Patch(ctx.Background(), 1, &auction.PatchableAuction{HighestBidder: &bidder}))
	req.ErrorIs(New(q).Patch(ctx.Background(), 2, &auction.PatchableAuction{HighestBidder: &bidder}), domain.ErrNotFound)
	q.AssertExpectations(t)
}

func TestEscrowFindOneMissing(t *testing.T) {
	req := require.New(t)
	q := &mocks.Mongo{}
	sel := bson.M{"auctionId": int64(1), "bidder": domain.Address("0xbidder"), "currency": domain.NativeCurrency}
	q.On("FindOne", mock.Anything, domain.TableEscrowEntries, sel, mock.Anything).Return(query.ErrNotFound).Once()

	res, err := NewEscrowRepo(q).FindOne(ctx.Background(), auction.EscrowKey{AuctionId: 1, Bidder: "0xBidder", Currency: ""})
	req.NoError(err)
	req.Nil(res)
	q.AssertExpectations(t)
}

func TestEscrowUpsert(t *testing.T) {
	req := require.New(t)
	q := &mocks.Mongo{}
	sel := bson.M{"auctionId": int64(1), "bidder": domain.Address("0xbidder"), "currency": domain.Currency("0xtoken")}
	q.On("Upsert", mock.Anything, domain.TableEscrowEntries, sel, mock.MatchedBy(func(e *auction.EscrowEntry) bool {
		return e.Bidder == "0xbidder" && e.RefundableAmount.Cmp(domain.NewAmount(5)) == 0
	})).Return(nil).Once()

	req.NoError(NewEscrowRepo(q).Upsert(ctx.Background(), &auction.EscrowEntry{
		EscrowKey:        auction.EscrowKey{AuctionId: 1, Bidder: "0xBIDDER", Currency: "0xTOKEN"},
		RefundableAmount: domain.NewAmount(5),
	}))
	q.AssertExpectations(t)
}
