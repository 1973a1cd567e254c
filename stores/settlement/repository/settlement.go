package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/settlement"
	"github.com/x-xyz/nftmarket/service/query"
)

// KeyPlatform is the key of the only fee config document
const KeyPlatform = "platform"

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) settlement.Repo {
	return &impl{q}
}

func (im *impl) FindOne(c ctx.Ctx) (*settlement.FeeConfig, error) {
	res := &settlement.FeeConfig{}
	if err := im.q.FindOne(c, domain.TableFeeConfigs, bson.M{"key": KeyPlatform}, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Upsert(c ctx.Ctx, config *settlement.FeeConfig) error {
	cfg := *config
	cfg.Key = KeyPlatform
	cfg.FeeRecipient = cfg.FeeRecipient.ToLower()
	if err := im.q.Upsert(c, domain.TableFeeConfigs, bson.M{"key": KeyPlatform}, &cfg); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
