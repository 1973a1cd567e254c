package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/database/mongoclient"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/auction"
	"github.com/x-xyz/nftmarket/service/query"
)

var Indexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	{Keys: bson.D{{Key: "active", Value: 1}, {Key: "endTime", Value: 1}}},
	{Keys: bson.D{{Key: "seller", Value: 1}}},
	{Keys: bson.D{{Key: "highestBidder", Value: 1}}},
	{Keys: bson.D{{Key: "nftContract", Value: 1}, {Key: "tokenId", Value: 1}, {Key: "active", Value: 1}}},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) auction.Repo {
	return &impl{q}
}

func (im *impl) Insert(c ctx.Ctx, a *auction.Auction) error {
	row := *a
	row.NftContract = row.NftContract.ToLower()
	row.Seller = row.Seller.ToLower()
	if err := im.q.Insert(c, domain.TableAuctions, &row); err != nil {
		c.WithFields(log.Fields{"err": err, "id": a.Id}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, id int64) (*auction.Auction, error) {
	res := &auction.Auction{}
	if err := im.q.FindOne(c, domain.TableAuctions, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("auction.GetFindAllOptions failed")
		return nil, err
	}

	qry := bson.M{"id": bson.M{"$gt": int64(0)}}
	if opts.Seller != nil {
		qry["seller"] = *opts.Seller
	}
	if opts.HighestBidder != nil {
		qry["highestBidder"] = *opts.HighestBidder
	}
	if opts.NftContract != nil {
		qry["nftContract"] = *opts.NftContract
	}
	if opts.TokenId != nil {
		qry["tokenId"] = *opts.TokenId
	}
	if opts.Active != nil {
		qry["active"] = *opts.Active
	}
	if opts.EndedBefore != nil {
		qry["endTime"] = bson.M{"$lte": *opts.EndedBefore}
	}

	offset, limit := 0, 0
	if opts.Offset != nil {
		offset = *opts.Offset
	}
	if opts.Limit != nil {
		limit = *opts.Limit
	}

	res := []*auction.Auction{}
	if err := im.q.Search(c, domain.TableAuctions, offset, limit, []string{"id"}, qry, &res); err != nil {
		c.WithFields(log.Fields{"err": err, "query": qry}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Patch(c ctx.Ctx, id int64, patchable *auction.PatchableAuction) error {
	p := *patchable
	if p.HighestBidder != nil {
		bidder := p.HighestBidder.ToLower()
		p.HighestBidder = &bidder
	}
	if p.HighestBidCurrency != nil {
		currency := p.HighestBidCurrency.Normalize()
		p.HighestBidCurrency = &currency
	}

	updater, err := mongoclient.MakeBsonM(&p)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "patchable": patchable}).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Patch(c, domain.TableAuctions, bson.M{"id": id}, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id, "updater": updater}).Error("q.Patch failed")
		return err
	}
	return nil
}
