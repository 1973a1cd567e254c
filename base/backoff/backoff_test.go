package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential(t *testing.T) {
	b := NewExponential(time.Millisecond, 5*time.Millisecond)
	ctx := context.Background()

	assert.Equal(t, time.Millisecond, b.Next())
	assert.NoError(t, b.Wait(ctx))
	assert.Equal(t, 2*time.Millisecond, b.Next())
	assert.NoError(t, b.Wait(ctx))
	assert.Equal(t, 4*time.Millisecond, b.Next())
	assert.NoError(t, b.Wait(ctx))
	assert.Equal(t, 5*time.Millisecond, b.Next(), "capped by limit")
	assert.Equal(t, 3, b.Count())

	b.Reset()
	assert.Equal(t, 0, b.Count())
	assert.Equal(t, time.Millisecond, b.Next())
}

func TestLinear(t *testing.T) {
	b := NewLinear(time.Millisecond, 0)
	assert.Equal(t, time.Millisecond, b.Next())
	assert.NoError(t, b.Wait(context.Background()))
	assert.Equal(t, 2*time.Millisecond, b.Next())
}

func TestWaitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewLinear(time.Hour, 0)
	assert.Equal(t, context.Canceled, b.Wait(ctx))
	assert.Equal(t, 0, b.Count())
}

func TestRetry(t *testing.T) {
	errBoom := errors.New("boom")

	calls := 0
	err := Retry(context.Background(), NewLinear(time.Millisecond, 0), 3, func() error {
		calls++
		if calls < 2 {
			return errBoom
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)

	calls = 0
	err = Retry(context.Background(), NewLinear(time.Millisecond, 0), 3, func() error {
		calls++
		return errBoom
	})
	assert.Equal(t, errBoom, err)
	assert.Equal(t, 3, calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Retry(ctx, NewLinear(time.Hour, 0), 3, func() error { return errBoom })
	assert.Equal(t, context.Canceled, err)
}
