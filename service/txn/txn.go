package txn

import (
	"github.com/x-xyz/nftmarket/base/ctx"
)

// Transactor runs fn atomically, every write made through the ctx handed to fn
// is discarded when fn returns an error
type Transactor interface {
	RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error
}

// Runner serializes state mutating calls.
//
// Reentrancy is detected through the ctx, so anything fn calls back into the
// marketplace with has to pass on the ctx it was given. A call made with an
// unrelated ctx, e.g. ctx.Background(), from inside fn waits for fn forever.
// AfterCommit hooks run once the runner is released and may start new calls.
type Runner interface {
	// Run executes fn as operation op. A ctx already inside Run is rejected with
	// domain.ErrReentrantCall.
	Run(c ctx.Ctx, op string, fn func(ctx.Ctx) error) error
}

// Direct runs fn on the caller's ctx without a transaction, writes are never rolled back
type Direct struct{}

func (Direct) RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	return fn(c)
}
