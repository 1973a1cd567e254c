package cache

import (
	"github.com/x-xyz/nftmarket/service/cache/provider"
	"github.com/x-xyz/nftmarket/service/cache/provider/compound"
	"github.com/x-xyz/nftmarket/service/cache/provider/primitive"
	pRedis "github.com/x-xyz/nftmarket/service/cache/provider/redis"
	"github.com/x-xyz/nftmarket/service/redis"
)

const (
	ProviderLocal    = "local"
	ProviderRedis    = "redis"
	ProviderCompound = "compound"
)

// NewProvider builds the provider named by kind. redis may be nil for local.
func NewProvider(kind, name string, sizeMB int, red redis.Service) (provider.Provider, error) {
	switch kind {
	case "", ProviderLocal:
		return primitive.NewPrimitive(name, sizeMB), nil
	case ProviderRedis:
		if red == nil {
			return nil, ErrUnknownProvider
		}
		return pRedis.NewRedis(red), nil
	case ProviderCompound:
		if red == nil {
			return nil, ErrUnknownProvider
		}
		return compound.NewCompound(primitive.NewPrimitive(name, sizeMB), pRedis.NewRedis(red)), nil
	}
	return nil, ErrUnknownProvider
}
