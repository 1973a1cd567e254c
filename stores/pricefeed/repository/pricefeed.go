package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/pricefeed"
	"github.com/x-xyz/nftmarket/service/query"
)

// Indexes are ensured on TablePriceFeedBindings at startup
var Indexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "currency", Value: 1}}, Options: options.Index().SetUnique(true)},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) pricefeed.Repo {
	return &impl{q}
}

func selector(currency domain.Currency) bson.M {
	return bson.M{"currency": currency.Normalize()}
}

func (im *impl) FindOne(c ctx.Ctx, currency domain.Currency) (*pricefeed.Binding, error) {
	res := &pricefeed.Binding{}
	if err := im.q.FindOne(c, domain.TablePriceFeedBindings, selector(currency), res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "currency": currency}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx) ([]*pricefeed.Binding, error) {
	res := []*pricefeed.Binding{}
	// to prevent scancol error
	qry := bson.M{"currency": bson.M{"$exists": true}}
	if err := im.q.Search(c, domain.TablePriceFeedBindings, 0, 0, []string{"currency"}, qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Upsert(c ctx.Ctx, binding *pricefeed.Binding) error {
	b := *binding
	b.Currency = b.Currency.Normalize()
	b.Feed = b.Feed.ToLower()
	b.UpdatedBy = b.UpdatedBy.ToLower()
	if err := im.q.Upsert(c, domain.TablePriceFeedBindings, selector(b.Currency), &b); err != nil {
		c.WithFields(log.Fields{"err": err, "currency": b.Currency}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Remove(c ctx.Ctx, currency domain.Currency) error {
	if err := im.q.Remove(c, domain.TablePriceFeedBindings, selector(currency)); err != nil {
		c.WithFields(log.Fields{"err": err, "currency": currency}).Error("q.Remove failed")
		return err
	}
	return nil
}
