package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/service/cache/provider"
	"github.com/x-xyz/nftmarket/service/redis"
	"github.com/x-xyz/nftmarket/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	redis *mocks.Service
	im    provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.redis = &mocks.Service{}
	ts.im = NewRedis(ts.redis)
}

func (ts *testsuite) TearDownTest() {
	ts.redis.AssertExpectations(ts.T())
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	ts.redis.On("Get", mock.Anything, "k").Return([]byte("v"), nil).Once()
	ts.redis.On("TTL", mock.Anything, "k").Return(30, nil).Once()

	v, ttl, err := ts.im.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("v"), v)
	ts.Equal(30*time.Second, ttl)
}

func (ts *testsuite) TestGetMissing() {
	ts.redis.On("Get", mock.Anything, "k").Return(nil, redis.ErrNotFound).Once()

	_, _, err := ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetPersistent() {
	ts.redis.On("Get", mock.Anything, "k").Return([]byte("v"), nil).Once()
	ts.redis.On("TTL", mock.Anything, "k").Return(-1, redis.ErrNoTTL).Once()

	_, ttl, err := ts.im.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestSet() {
	ts.redis.On("Set", mock.Anything, "k", []byte("v"), time.Minute).Return(nil).Once()
	ts.redis.On("Set", mock.Anything, "p", []byte("v"), redis.Forever).Return(nil).Once()

	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	ts.NoError(ts.im.Set(mockCtx, "p", []byte("v"), 0))
}

func (ts *testsuite) TestDel() {
	ts.redis.On("Del", mock.Anything, "k").Return(1, nil).Once()
	ts.NoError(ts.im.Del(mockCtx, "k"))
}
