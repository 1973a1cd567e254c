package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/custody"
	"github.com/x-xyz/nftmarket/service/query"
)

var (
	// HoldingIndexes are ensured on TableAssetHoldings at startup
	HoldingIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "contract", Value: 1}, {Key: "tokenId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	}
	// OperatorIndexes are ensured on TableOperatorApprovals at startup
	OperatorIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "contract", Value: 1}, {Key: "owner", Value: 1}, {Key: "operator", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
)

type holdingImpl struct {
	q query.Mongo
}

func NewHoldingRepo(q query.Mongo) custody.HoldingRepo {
	return &holdingImpl{q}
}

func assetSelector(asset domain.AssetId) bson.M {
	asset = asset.ToLower()
	return bson.M{"contract": asset.Contract, "tokenId": asset.TokenId}
}

func (im *holdingImpl) FindOne(c ctx.Ctx, asset domain.AssetId) (*custody.Holding, error) {
	res := &custody.Holding{}
	if err := im.q.FindOne(c, domain.TableAssetHoldings, assetSelector(asset), res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "asset": asset}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *holdingImpl) Upsert(c ctx.Ctx, holding *custody.Holding) error {
	h := *holding
	h.AssetId = h.AssetId.ToLower()
	h.Owner = h.Owner.ToLower()
	h.Approved = h.Approved.ToLower()
	if err := im.q.Upsert(c, domain.TableAssetHoldings, assetSelector(h.AssetId), &h); err != nil {
		c.WithFields(log.Fields{"err": err, "asset": h.AssetId}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func operatorSelector(contract, owner, operator domain.Address) bson.M {
	return bson.M{
		"contract": contract.ToLower(),
		"owner":    owner.ToLower(),
		"operator": operator.ToLower(),
	}
}

func (im *holdingImpl) FindOperatorApproval(c ctx.Ctx, contract, owner, operator domain.Address) (*custody.OperatorApproval, error) {
	res := &custody.OperatorApproval{}
	if err := im.q.FindOne(c, domain.TableOperatorApprovals, operatorSelector(contract, owner, operator), res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "contract": contract, "owner": owner}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *holdingImpl) UpsertOperatorApproval(c ctx.Ctx, approval *custody.OperatorApproval) error {
	a := *approval
	a.Contract = a.Contract.ToLower()
	a.Owner = a.Owner.ToLower()
	a.Operator = a.Operator.ToLower()
	if err := im.q.Upsert(c, domain.TableOperatorApprovals, operatorSelector(a.Contract, a.Owner, a.Operator), &a); err != nil {
		c.WithFields(log.Fields{"err": err, "contract": a.Contract, "owner": a.Owner}).Error("q.Upsert failed")
		return err
	}
	return nil
}
