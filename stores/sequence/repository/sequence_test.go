package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/service/query/mocks"
)

func TestNext(t *testing.T) {
	q := &mocks.Mongo{}
	q.On("Increment", mock.Anything, domain.TableCounters, bson.M{"name": domain.SequenceListing}, mock.Anything, "value", 1).
		Run(func(args mock.Arguments) {
			args.Get(3).(*domain.Sequence).Value = 42
		}).Return(nil).Once()

	v, err := New(q).Next(ctx.Background(), domain.SequenceListing)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v)
	q.AssertExpectations(t)
}
