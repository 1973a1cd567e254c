package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 1).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.im.cache.Clear()
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), time.Minute))

	v, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal([]byte("value"), v)
	ts.True(ttl > 0 && ttl <= time.Minute)
}

func (ts *testsuite) TestGetMissing() {
	_, _, err := ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestNoExpiration() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), 0))
	_, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "key"))
	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)
}
