package txn

import (
	"sync"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/base/metrics"
	"github.com/x-xyz/nftmarket/domain"
)

const runKey = "txn.run"

var met = metrics.New("txn")

type run struct {
	op    string
	hooks []func()
}

type runnerImpl struct {
	mu sync.Mutex
	tx Transactor
}

func NewRunner(tx Transactor) Runner {
	return &runnerImpl{tx: tx}
}

func (r *runnerImpl) Run(c ctx.Ctx, op string, fn func(ctx.Ctx) error) error {
	if cur := current(c); cur != nil {
		c.WithFields(log.Fields{"op": op, "running": cur.op}).Warn("reentrant call rejected")
		met.BumpSum("reentrant", 1, "op", op)
		return domain.ErrReentrantCall
	}

	rn, err := r.run(c, op, fn)
	if err != nil {
		met.BumpSum(op+".err", 1, "kind", domain.KindOf(err).String())
		return err
	}

	for _, h := range rn.hooks {
		h()
	}
	return nil
}

func (r *runnerImpl) run(c ctx.Ctx, op string, fn func(ctx.Ctx) error) (*run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer met.BumpTime(op + ".time").End()

	var rn *run
	err := r.tx.RunWithTransaction(c, func(tc ctx.Ctx) error {
		// a retried transaction starts over with no hooks
		rn = &run{op: op}
		return fn(ctx.WithSilentValue(tc, runKey, rn))
	})
	return rn, err
}

// AfterCommit defers f until the enclosing Run commits. Outside Run f is called at once.
func AfterCommit(c ctx.Ctx, f func()) {
	if rn := current(c); rn != nil {
		rn.hooks = append(rn.hooks, f)
		return
	}
	f()
}

// InRun reports whether c belongs to a running call
func InRun(c ctx.Ctx) bool {
	return current(c) != nil
}

func current(c ctx.Ctx) *run {
	if c.Context == nil {
		return nil
	}
	rn, _ := c.Value(runKey).(*run)
	return rn
}
