package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/pricefeed"
	"github.com/x-xyz/nftmarket/service/query"
	"github.com/x-xyz/nftmarket/service/query/mocks"
)

func TestFindOneNotFound(t *testing.T) {
	req := require.New(t)
	q := &mocks.Mongo{}
	token := domain.TokenCurrency("0xAbC")
	q.On("FindOne", mock.Anything, domain.TablePriceFeedBindings, bson.M{"currency": domain.Currency("0xabc")}, mock.Anything).
		Return(query.ErrNotFound).Once()

	res, err := New(q).FindOne(ctx.Background(), token)
	req.NoError(err)
	req.Nil(res)
}

func TestUpsertLowercases(t *testing.T) {
	req := require.New(t)
	q := &mocks.Mongo{}
	q.On("Upsert", mock.Anything, domain.TablePriceFeedBindings, bson.M{"currency": domain.Currency("0xabc")}, mock.MatchedBy(func(b *pricefeed.Binding) bool {
		return b.Feed == "0xfeed" && b.UpdatedBy == "0xadmin"
	})).Return(nil).Once()

	err := New(q).Upsert(ctx.Background(), &pricefeed.Binding{
		Currency:  "0xABC",
		Feed:      "0xFEED",
		UpdatedBy: "0xAdmin",
	})
	req.NoError(err)
	q.AssertExpectations(t)
}
