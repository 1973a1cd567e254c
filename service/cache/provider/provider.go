package provider

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
)

var (
	ErrNotFound = xerrors.New("Cache not found")
)

// Provider is a raw byte cache
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
