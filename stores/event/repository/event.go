package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/event"
	"github.com/x-xyz/nftmarket/service/query"
)

const defaultLimit = 100

// Indexes are ensured on TableEvents at startup
var Indexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "seq", Value: 1}}, Options: options.Index().SetUnique(true)},
	{Keys: bson.D{{Key: "listingId", Value: 1}, {Key: "seq", Value: 1}}},
	{Keys: bson.D{{Key: "auctionId", Value: 1}, {Key: "seq", Value: 1}}},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) event.Repo {
	return &impl{q}
}

func (im *impl) Insert(c ctx.Ctx, e *event.Event) error {
	if err := im.q.Insert(c, domain.TableEvents, e); err != nil {
		c.WithFields(log.Fields{"err": err, "type": e.Type, "seq": e.Seq}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	opts, err := event.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("event.GetFindAllOptions failed")
		return nil, err
	}

	qry := bson.M{"seq": bson.M{"$gt": int64(0)}}
	if opts.AfterSeq != nil {
		qry["seq"] = bson.M{"$gt": *opts.AfterSeq}
	}
	if opts.Type != nil {
		qry["type"] = *opts.Type
	}
	if opts.ListingId != nil {
		qry["listingId"] = *opts.ListingId
	}
	if opts.AuctionId != nil {
		qry["auctionId"] = *opts.AuctionId
	}

	limit := defaultLimit
	if opts.Limit != nil && *opts.Limit > 0 {
		limit = *opts.Limit
	}

	res := []*event.Event{}
	if err := im.q.Search(c, domain.TableEvents, 0, limit, []string{"seq"}, qry, &res); err != nil {
		c.WithFields(log.Fields{"err": err, "query": qry}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
