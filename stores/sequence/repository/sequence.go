package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/service/query"
)

// Indexes are ensured on TableCounters at startup
var Indexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) domain.SequenceRepo {
	return &impl{q}
}

func (im *impl) Next(c ctx.Ctx, name string) (int64, error) {
	res := &domain.Sequence{}
	if err := im.q.Increment(c, domain.TableCounters, bson.M{"name": name}, res, "value", 1); err != nil {
		c.WithFields(log.Fields{"err": err, "name": name}).Error("q.Increment failed")
		return 0, err
	}
	return res.Value, nil
}
