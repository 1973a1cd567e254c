package backoff

import (
	"context"
	"time"
)

// Strategy returns the wait before retry n, counted from 0
type Strategy func(n int, start time.Duration) time.Duration

// Exponential doubles the wait on every retry
func Exponential(n int, start time.Duration) time.Duration {
	return start << uint(n)
}

// Linear grows the wait by start on every retry
func Linear(n int, start time.Duration) time.Duration {
	return time.Duration(n+1) * start
}

// Backoff tracks the waits of one retry loop, it is not safe for concurrent use
type Backoff struct {
	strategy Strategy
	start    time.Duration
	limit    time.Duration
	count    int
}

// New creates a Backoff, a zero limit leaves the wait uncapped
func New(strategy Strategy, start, limit time.Duration) *Backoff {
	return &Backoff{strategy: strategy, start: start, limit: limit}
}

func NewExponential(start, limit time.Duration) *Backoff {
	return New(Exponential, start, limit)
}

func NewLinear(start, limit time.Duration) *Backoff {
	return New(Linear, start, limit)
}

// Next is the wait the next Wait call sleeps for
func (b *Backoff) Next() time.Duration {
	d := b.strategy(b.count, b.start)
	if b.limit > 0 && (d > b.limit || d <= 0) {
		return b.limit
	}
	return d
}

// Count is the number of completed waits since the last reset
func (b *Backoff) Count() int {
	return b.count
}

func (b *Backoff) Reset() {
	b.count = 0
}

// Wait sleeps for Next, or returns ctx's error if ctx ends first
func (b *Backoff) Wait(ctx context.Context) error {
	t := time.NewTimer(b.Next())
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		b.count++
		return nil
	}
}

// Retry calls fn until it succeeds, ctx is done or attempts calls have failed.
// It returns the last error of fn, or ctx's error if ctx ended first.
func Retry(ctx context.Context, b *Backoff, attempts int, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		if werr := b.Wait(ctx); werr != nil {
			return werr
		}
	}
	return err
}
