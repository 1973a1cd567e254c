package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/database/mongoclient"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/listing"
	"github.com/x-xyz/nftmarket/service/query"
)

// Indexes are ensured on TableListings at startup
var Indexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	{Keys: bson.D{{Key: "seller", Value: 1}, {Key: "active", Value: 1}}},
	{Keys: bson.D{{Key: "nftContract", Value: 1}, {Key: "tokenId", Value: 1}, {Key: "active", Value: 1}}},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) listing.Repo {
	return &impl{q}
}

func (im *impl) Insert(c ctx.Ctx, l *listing.Listing) error {
	row := *l
	row.NftContract = row.NftContract.ToLower()
	row.Seller = row.Seller.ToLower()
	if err := im.q.Insert(c, domain.TableListings, &row); err != nil {
		c.WithFields(log.Fields{"err": err, "id": l.Id}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, id int64) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := im.q.FindOne(c, domain.TableListings, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}

	// to prevent scancol error
	qry := bson.M{"id": bson.M{"$gt": int64(0)}}
	if opts.Seller != nil {
		qry["seller"] = *opts.Seller
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

	offset, limit := 0, 0
	if opts.Offset != nil {
		offset = *opts.Offset
	}
	if opts.Limit != nil {
		limit = *opts.Limit
	}

	res := []*listing.Listing{}
	if err := im.q.Search(c, domain.TableListings, offset, limit, []string{"id"}, qry, &res); err != nil {
		c.WithFields(log.Fields{"err": err, "query": qry}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Patch(c ctx.Ctx, id int64, patchable *listing.PatchableListing) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "patchable": patchable}).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Patch(c, domain.TableListings, bson.M{"id": id}, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id, "updater": updater}).Error("q.Patch failed")
		return err
	}
	return nil
}
