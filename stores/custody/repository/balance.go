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
	// BalanceIndexes are ensured on TableBalances at startup
	BalanceIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "currency", Value: 1}, {Key: "holder", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	// AllowanceIndexes are ensured on TableAllowances at startup
	AllowanceIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "currency", Value: 1}, {Key: "owner", Value: 1}, {Key: "spender", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
)

type balanceImpl struct {
	q query.Mongo
}

func NewBalanceRepo(q query.Mongo) custody.BalanceRepo {
	return &balanceImpl{q}
}

func balanceSelector(currency domain.Currency, holder domain.Address) bson.M {
	return bson.M{"currency": currency.Normalize(), "holder": holder.ToLower()}
}

func (im *balanceImpl) FindBalance(c ctx.Ctx, currency domain.Currency, holder domain.Address) (*custody.Balance, error) {
	res := &custody.Balance{}
	if err := im.q.FindOne(c, domain.TableBalances, balanceSelector(currency, holder), res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "currency": currency, "holder": holder}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *balanceImpl) UpsertBalance(c ctx.Ctx, balance *custody.Balance) error {
	b := *balance
	b.Currency = b.Currency.Normalize()
	b.Holder = b.Holder.ToLower()
	if err := im.q.Upsert(c, domain.TableBalances, balanceSelector(b.Currency, b.Holder), &b); err != nil {
		c.WithFields(log.Fields{"err": err, "currency": b.Currency, "holder": b.Holder}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func allowanceSelector(currency domain.Currency, owner, spender domain.Address) bson.M {
	return bson.M{"currency": currency.Normalize(), "owner": owner.ToLower(), "spender": spender.ToLower()}
}

func (im *balanceImpl) FindAllowance(c ctx.Ctx, currency domain.Currency, owner, spender domain.Address) (*custody.Allowance, error) {
	res := &custody.Allowance{}
	if err := im.q.FindOne(c, domain.TableAllowances, allowanceSelector(currency, owner, spender), res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "currency": currency, "owner": owner}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *balanceImpl) UpsertAllowance(c ctx.Ctx, allowance *custody.Allowance) error {
	a := *allowance
	a.Currency = a.Currency.Normalize()
	a.Owner = a.Owner.ToLower()
	a.Spender = a.Spender.ToLower()
	if err := im.q.Upsert(c, domain.TableAllowances, allowanceSelector(a.Currency, a.Owner, a.Spender), &a); err != nil {
		c.WithFields(log.Fields{"err": err, "currency": a.Currency, "owner": a.Owner}).Error("q.Upsert failed")
		return err
	}
	return nil
}
