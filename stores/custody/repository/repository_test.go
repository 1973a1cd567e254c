package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/custody"
	"github.com/x-xyz/nftmarket/service/query"
	"github.com/x-xyz/nftmarket/service/query/mocks"
)

func TestHoldingUpsertLowercases(t *testing.T) {
	req := require.New(t)
	q := &mocks.Mongo{}
	q.On("Upsert", mock.Anything, domain.TableAssetHoldings, bson.M{"contract": domain.Address("0xnft"), "tokenId": domain.TokenId("1")}, mock.MatchedBy(func(h *custody.Holding) bool {
		return h.Owner == "0xowner" && h.Contract == "0xnft"
	})).Return(nil).Once()

	err := NewHoldingRepo(q).Upsert(ctx.Background(), &custody.Holding{
		AssetId: domain.AssetId{Contract: "0xNFT", TokenId: "1"},
		Owner:   "0xOWNER",
	})
	req.NoError(err)
	q.AssertExpectations(t)
}

func TestFindBalanceMissing(t *testing.T) {
	req := require.New(t)
	q := &mocks.Mongo{}
	q.On("FindOne", mock.Anything, domain.TableBalances, bson.M{"currency": domain.NativeCurrency, "holder": domain.Address("0xa")}, mock.Anything).Return(query.ErrNotFound).Once()

	res, err := NewBalanceRepo(q).FindBalance(ctx.Background(), "", "0xA")
	req.NoError(err)
	req.Nil(res)
}
