package redis

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
)

// Forever marks a key without expiration
const Forever time.Duration = -1

var (
	ErrNotFound = xerrors.New("redis: key not found")
	ErrNoTTL    = xerrors.New("redis: key has no ttl")
	ErrNoPool   = xerrors.New("redis: no pool")
)

// Service is the subset of redis commands used by cache and event fan-out
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, ks ...string) (int, error)
	Exists(c ctx.Ctx, key string) (bool, error)
	// TTL returns remaining seconds, ErrNotFound for a missing key and ErrNoTTL for a persistent one
	TTL(c ctx.Ctx, key string) (int, error)
	// Publish returns the number of subscribers that received payload
	Publish(c ctx.Ctx, channel string, payload []byte) (int, error)
	Ping(c ctx.Ctx) error
}
