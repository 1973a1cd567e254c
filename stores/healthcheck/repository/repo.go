package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/database/mongoclient"
	hcdomain "github.com/x-xyz/nftmarket/domain/healthcheck"
	"github.com/x-xyz/nftmarket/domain/keys"
	"github.com/x-xyz/nftmarket/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mgoClient  *mongoclient.Client
	redisCache redis.Service
}

// New creates the health check repo. A nil client or cache is probed as
// hcdomain.ErrDisabled, the in-memory deployment runs without both.
func New(
	mgoClient *mongoclient.Client,
	redisCache redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient:  mgoClient,
		redisCache: redisCache,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	if im.mgoClient == nil {
		return hcdomain.ErrDisabled
	}
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if im.redisCache == nil {
		return hcdomain.ErrDisabled
	}
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redisCache.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping redis error")
		return err
	}
	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}
