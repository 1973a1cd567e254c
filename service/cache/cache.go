package cache

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/service/cache/provider"
)

var (
	ErrNotFound        = xerrors.New("Cache not found")
	ErrUnknownProvider = xerrors.New("unknown cache provider")
)

// OneTimeGetter loads the value on a miss, it must return a pointer of the container type
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service is a typed cache over a raw provider
type Service interface {
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
