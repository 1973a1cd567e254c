package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ctxSuite struct {
	suite.Suite
}

func TestCtxSuite(t *testing.T) {
	suite.Run(t, new(ctxSuite))
}

func (s *ctxSuite) TestValues() {
	bg := Background()

	c := WithValues(WithValue(bg, "requestID", "r-1"), map[string]interface{}{
		"op":  "buy",
		"lid": int64(7),
	})
	s.Equal("r-1", c.Value("requestID"))
	s.Equal("buy", c.Value("op"))
	s.Equal(int64(7), c.Value("lid"))

	silent := WithSilentValue(bg, "txn.run", 1)
	s.Equal(1, silent.Value("txn.run"))
	s.Equal(bg.Logger, silent.Logger)
}

func (s *ctxSuite) TestDetachOutlivesParent() {
	parent, cancel := WithCancel(WithValue(Background(), "requestID", "r-1"))
	detached := Detach(parent)
	cancel()

	s.Equal(context.Canceled, parent.Err())
	s.NoError(detached.Err())
	s.Nil(detached.Value("requestID"))
	s.Equal(parent.Logger, detached.Logger)
}

func (s *ctxSuite) TestTimeout() {
	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()

	select {
	case <-c.Done():
	case <-time.After(time.Second):
		s.Fail("timeout not honored")
	}
	s.Equal(context.DeadlineExceeded, c.Err())
}
