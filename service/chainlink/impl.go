package chainlink

import (
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/nftmarket/base/abi"
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/keys"
	"github.com/x-xyz/nftmarket/service/cache"
	"github.com/x-xyz/nftmarket/service/chain"
)

type impl struct {
	chainClient chain.Client
	cache       cache.Service
}

// New returns an aggregator reader. Feed decimals never change so they are kept in cache for a day.
func New(chainClient chain.Client, cacheService cache.Service) Chainlink {
	return &impl{
		chainClient: chainClient,
		cache:       cacheService,
	}
}

// NewCacheConfig is the cache setting used for feed decimals
func NewCacheConfig(p cache.ServiceConfig) cache.ServiceConfig {
	p.Ttl = 24 * time.Hour
	p.Pfx = keys.PfxFeedDecimals
	return p
}

func (im *impl) Decimals(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (int32, error) {
	var res int32

	key := keys.RedisKey(strconv.Itoa(int(chainId)), address.ToLowerStr())

	if err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		d, err := im.decimals(c, chainId, address)
		if err != nil {
			return nil, err
		}
		return &d, nil
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": address,
		}).Error("cache.GetByFunc failed")
		return 0, err
	}

	return res, nil
}

func (im *impl) decimals(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (int32, error) {
	res, err := im.chainClient.Call(c, int32(chainId), common.HexToAddress(string(address)), nil, abi.AggregatorV3ABI, "decimals")
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": address,
		}).Error("chainClient.Call decimals failed")
		return 0, err
	}
	return int32(res[0].(uint8)), nil
}

func (im *impl) LatestRoundData(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*Quote, error) {
	decimals, err := im.Decimals(c, chainId, address)
	if err != nil {
		return nil, err
	}

	res, err := im.chainClient.Call(c, int32(chainId), common.HexToAddress(string(address)), nil, abi.AggregatorV3ABI, "latestRoundData")
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": address,
		}).Error("chainClient.Call latestRoundData failed")
		return nil, err
	}

	roundId := res[0].(*big.Int)
	answer := res[1].(*big.Int)
	updatedAt := res[3].(*big.Int)
	answeredInRound := res[4].(*big.Int)

	return &Quote{
		RoundId:   roundId,
		Answer:    answer,
		Decimals:  decimals,
		UpdatedAt: time.Unix(updatedAt.Int64(), 0),
		Valid:     updatedAt.Sign() > 0 && answeredInRound.Cmp(roundId) >= 0,
	}, nil
}
