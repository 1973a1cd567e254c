package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/settlement"
	"github.com/x-xyz/nftmarket/service/query"
	"github.com/x-xyz/nftmarket/service/query/mocks"
)

func TestFindOneNeverPersisted(t *testing.T) {
	req := require.New(t)
	q := &mocks.Mongo{}
	q.On("FindOne", mock.Anything, domain.TableFeeConfigs, bson.M{"key": KeyPlatform}, mock.Anything).Return(query.ErrNotFound).Once()

	res, err := New(q).FindOne(ctx.Background())
	req.NoError(err)
	req.Nil(res)
}

func TestUpsertSetsKey(t *testing.T) {
	req := require.New(t)
	q := &mocks.Mongo{}
	q.On("Upsert", mock.Anything, domain.TableFeeConfigs, bson.M{"key": KeyPlatform}, mock.MatchedBy(func(cfg *settlement.FeeConfig) bool {
		return cfg.Key == KeyPlatform && cfg.FeeRecipient == "0xabc" && cfg.BasisPoints == 250
	})).Return(nil).Once()

	req.NoError(New(q).Upsert(ctx.Background(), &settlement.FeeConfig{BasisPoints: 250, FeeRecipient: "0xABC"}))
	q.AssertExpectations(t)
}
