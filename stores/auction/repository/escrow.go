package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/auction"
	"github.com/x-xyz/nftmarket/service/query"
)

var EscrowIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "auctionId", Value: 1}, {Key: "bidder", Value: 1}, {Key: "currency", Value: 1}},
		Options: options.Index().SetUnique(true),
	},
}

type escrowImpl struct {
	q query.Mongo
}

func NewEscrowRepo(q query.Mongo) auction.EscrowRepo {
	return &escrowImpl{q}
}

func selector(key auction.EscrowKey) bson.M {
	return bson.M{"auctionId": key.AuctionId, "bidder": key.Bidder, "currency": key.Currency}
}

func (im *escrowImpl) FindOne(c ctx.Ctx, key auction.EscrowKey) (*auction.EscrowEntry, error) {
	key = key.ToLower()
	res := &auction.EscrowEntry{}
	if err := im.q.FindOne(c, domain.TableEscrowEntries, selector(key), res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *escrowImpl) FindAll(c ctx.Ctx, auctionId int64) ([]*auction.EscrowEntry, error) {
	res := []*auction.EscrowEntry{}
	if err := im.q.Search(c, domain.TableEscrowEntries, 0, 0, []string{"bidder", "currency"}, bson.M{"auctionId": auctionId}, &res); err != nil {
		c.WithFields(log.Fields{"err": err, "auctionId": auctionId}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *escrowImpl) Upsert(c ctx.Ctx, entry *auction.EscrowEntry) error {
	row := *entry
	row.EscrowKey = entry.EscrowKey.ToLower()
	if err := im.q.Upsert(c, domain.TableEscrowEntries, selector(row.EscrowKey), &row); err != nil {
		c.WithFields(log.Fields{"err": err, "key": row.EscrowKey}).Error("q.Upsert failed")
		return err
	}
	return nil
}
