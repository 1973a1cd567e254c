package txn

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

type fakeTx struct {
	committed int
	aborted   int
	attempts  int
}

func (f *fakeTx) RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	for i := 0; i < f.attempts-1; i++ {
		// simulate a transient failure that forces a retry
		_ = fn(c)
	}
	if err := fn(c); err != nil {
		f.aborted++
		return err
	}
	f.committed++
	return nil
}

type runnerSuite struct {
	suite.Suite
	tx     *fakeTx
	runner Runner
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(runnerSuite))
}

func (s *runnerSuite) SetupTest() {
	s.tx = &fakeTx{attempts: 1}
	s.runner = NewRunner(s.tx)
}

func (s *runnerSuite) TestHooksRunAfterCommit() {
	order := []string{}
	err := s.runner.Run(ctx.Background(), "op", func(c ctx.Ctx) error {
		s.True(InRun(c))
		AfterCommit(c, func() { order = append(order, "hook") })
		order = append(order, "body")
		return nil
	})
	s.NoError(err)
	s.Equal([]string{"body", "hook"}, order)
	s.Equal(1, s.tx.committed)
}

func (s *runnerSuite) TestHooksDroppedOnError() {
	boom := xerrors.New("boom")
	called := false
	err := s.runner.Run(ctx.Background(), "op", func(c ctx.Ctx) error {
		AfterCommit(c, func() { called = true })
		return boom
	})
	s.Equal(boom, err)
	s.False(called)
	s.Equal(1, s.tx.aborted)
}

func (s *runnerSuite) TestHooksOfRetriedAttemptDropped() {
	s.tx.attempts = 3
	calls := 0
	s.NoError(s.runner.Run(ctx.Background(), "op", func(c ctx.Ctx) error {
		AfterCommit(c, func() { calls++ })
		return nil
	}))
	s.Equal(1, calls)
}

func (s *runnerSuite) TestReentrantCallRejected() {
	var inner error
	s.NoError(s.runner.Run(ctx.Background(), "outer", func(c ctx.Ctx) error {
		inner = s.runner.Run(c, "inner", func(ctx.Ctx) error { return nil })
		return nil
	}))
	s.Equal(domain.ErrReentrantCall, inner)
	s.Equal(domain.KindState, domain.KindOf(inner))
}

func (s *runnerSuite) TestAfterCommitOutsideRun() {
	called := false
	AfterCommit(ctx.Background(), func() { called = true })
	s.True(called)
	s.False(InRun(ctx.Background()))
}

func (s *runnerSuite) TestHookMayStartNewCall() {
	var follow error
	s.NoError(s.runner.Run(ctx.Background(), "first", func(c ctx.Ctx) error {
		AfterCommit(c, func() {
			follow = s.runner.Run(ctx.Background(), "second", func(ctx.Ctx) error { return nil })
		})
		return nil
	}))
	s.NoError(follow)
	s.Equal(2, s.tx.committed)
}
