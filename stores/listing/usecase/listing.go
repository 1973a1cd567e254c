package usecase

import (
	"errors"
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/base/ptr"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/auction"
	"github.com/x-xyz/nftmarket/domain/custody"
	"github.com/x-xyz/nftmarket/domain/event"
	"github.com/x-xyz/nftmarket/domain/listing"
	"github.com/x-xyz/nftmarket/domain/pricefeed"
	"github.com/x-xyz/nftmarket/domain/settlement"
	"github.com/x-xyz/nftmarket/service/txn"
)

type ListingUseCaseCfg struct {
	Repo       listing.Repo
	Auctions   auction.Repo
	Sequence   domain.SequenceRepo
	Assets     custody.AssetLedger
	PriceFeed  pricefeed.UseCase
	Settlement settlement.UseCase
	Event      event.UseCase
	Runner     txn.Runner

	// Marketplace is the operator identity sellers approve
	Marketplace domain.Address
	Now         func() time.Time
}

type impl struct {
	repo        listing.Repo
	auctions    auction.Repo
	seq         domain.SequenceRepo
	assets      custody.AssetLedger
	pricefeed   pricefeed.UseCase
	settlement  settlement.UseCase
	event       event.UseCase
	runner      txn.Runner
	marketplace domain.Address
	now         func() time.Time
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		repo:        cfg.Repo,
		auctions:    cfg.Auctions,
		seq:         cfg.Sequence,
		assets:      cfg.Assets,
		pricefeed:   cfg.PriceFeed,
		settlement:  cfg.Settlement,
		event:       cfg.Event,
		runner:      cfg.Runner,
		marketplace: cfg.Marketplace.ToLower(),
		now:         now,
	}
}

func (im *impl) List(c ctx.Ctx, caller domain.Address, asset domain.AssetId, price domain.Amount) (*listing.Listing, error) {
	var res *listing.Listing
	err := im.runner.Run(c, "list", func(c ctx.Ctx) error {
		now := im.now()

		if price.Sign() <= 0 {
			return domain.ErrInvalidPrice
		}
		if asset.Contract.IsEmpty() {
			return domain.ErrInvalidAsset
		}
		if err := checkOwnership(c, im.assets, caller, asset, im.marketplace); err != nil {
			return err
		}
		if err := im.checkNotListed(c, asset); err != nil {
			return err
		}
		if err := im.checkNotAuctioned(c, asset); err != nil {
			return err
		}

		id, err := im.seq.Next(c, domain.SequenceListing)
		if err != nil {
			c.WithField("err", err).Error("seq.Next failed")
			return err
		}

		l := &listing.Listing{
			Id:          id,
			NftContract: asset.Contract.ToLower(),
			TokenId:     asset.TokenId,
			Seller:      caller.ToLower(),
			Price:       price,
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := im.repo.Insert(c, l); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.Insert failed")
			return err
		}
		if err := im.event.Emit(c, event.Listed(id, l.Seller, l.Asset(), price)); err != nil {
			return err
		}

		res = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// checkOwnership verifies caller owns asset and operator may move it
func checkOwnership(c ctx.Ctx, assets custody.AssetLedger, caller domain.Address, asset domain.AssetId, operator domain.Address) error {
	owner, err := assets.OwnerOf(c, asset)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "asset": asset}).Warn("assets.OwnerOf failed")
		return err
	}
	if !owner.Equals(caller) {
		return domain.ErrNotOwner
	}
	if ok, err := assets.IsApprovedForOperator(c, asset, operator); err != nil {
		c.WithFields(log.Fields{"err": err, "asset": asset}).Warn("assets.IsApprovedForOperator failed")
		return err
	} else if !ok {
		return domain.ErrNotApproved
	}
	return nil
}

// checkNotListed rejects an asset that already has an active listing
func (im *impl) checkNotListed(c ctx.Ctx, asset domain.AssetId) error {
	listed, err := im.repo.FindAll(c, listing.WithAsset(asset), listing.WithActive(true), listing.WithPagination(0, 1))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "asset": asset}).Error("repo.FindAll failed")
		return err
	}
	if len(listed) > 0 {
		return domain.ErrAssetEngaged
	}
	return nil
}

// checkNotAuctioned rejects an asset that is under an active auction
func (im *impl) checkNotAuctioned(c ctx.Ctx, asset domain.AssetId) error {
	running, err := im.auctions.FindAll(c, auction.WithAsset(asset), auction.WithActive(true), auction.WithPagination(0, 1))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "asset": asset}).Error("auctions.FindAll failed")
		return err
	}
	if len(running) > 0 {
		return domain.ErrAssetEngaged
	}
	return nil
}

// findActive loads listing id, a missing listing is reported as inactive
func (im *impl) findActive(c ctx.Ctx, id int64) (*listing.Listing, error) {
	l, err := im.repo.FindOne(c, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotActive
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.FindOne failed")
		return nil, err
	}
	if !l.Active {
		return nil, domain.ErrNotActive
	}
	return l, nil
}

func (im *impl) Delist(c ctx.Ctx, caller domain.Address, id int64) error {
	return im.runner.Run(c, "delist", func(c ctx.Ctx) error {
		now := im.now()

		l, err := im.findActive(c, id)
		if err != nil {
			return err
		}
		if !l.Seller.Equals(caller) {
			return domain.ErrNotSeller
		}

		if err := im.repo.Patch(c, id, &listing.PatchableListing{Active: ptr.Bool(false), UpdatedAt: &now}); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.Patch failed")
			return err
		}
		return im.event.Emit(c, event.Delisted(id))
	})
}

func (im *impl) UpdatePrice(c ctx.Ctx, caller domain.Address, id int64, price domain.Amount) error {
	return im.runner.Run(c, "updatePrice", func(c ctx.Ctx) error {
		now := im.now()

		l, err := im.findActive(c, id)
		if err != nil {
			return err
		}
		if !l.Seller.Equals(caller) {
			return domain.ErrNotSeller
		}
		if price.Sign() <= 0 {
			return domain.ErrInvalidPrice
		}

		if err := im.repo.Patch(c, id, &listing.PatchableListing{Price: &price, UpdatedAt: &now}); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.Patch failed")
			return err
		}
		return im.event.Emit(c, event.PriceUpdated(id, price))
	})
}

func (im *impl) Buy(c ctx.Ctx, caller domain.Address, id int64, payment settlement.Payment) error {
	return im.runner.Run(c, "buy", func(c ctx.Ctx) error {
		now := im.now()
		payment.Currency = payment.Currency.Normalize()

		// checks
		l, err := im.findActive(c, id)
		if err != nil {
			return err
		}
		if l.Seller.Equals(caller) {
			return domain.ErrCannotBuyOwn
		}
		if err := im.checkNotAuctioned(c, l.Asset()); err != nil {
			return err
		}
		required, err := im.pricefeed.RequiredAmount(c, l.Price, payment.Currency)
		if err != nil {
			return err
		}
		if err := im.settlement.CheckPayment(c, caller, payment, required); err != nil {
			return err
		}
		amount := payment.Amount()

		// effects
		if err := im.repo.Patch(c, id, &listing.PatchableListing{Active: ptr.Bool(false), UpdatedAt: &now}); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.Patch failed")
			return err
		}
		if err := im.event.Emit(c, event.Sold(id, caller.ToLower(), l.Seller, payment.Currency, amount)); err != nil {
			return err
		}

		// interactions
		if err := im.settlement.Collect(c, caller, payment); err != nil {
			return err
		}
		receipt, err := im.settlement.Payout(c, payment.Currency, amount, l.Seller)
		if err != nil {
			return err
		}
		if err := im.assets.Transfer(c, im.marketplace, l.Asset(), l.Seller, caller); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("assets.Transfer failed")
			return err
		}

		c.WithFields(log.Fields{
			"id":       id,
			"buyer":    caller,
			"currency": payment.Currency,
			"amount":   amount,
			"fee":      receipt.FeeReceived,
		}).Info("listing sold")
		return nil
	})
}

func (im *impl) RequiredAmount(c ctx.Ctx, id int64, currency domain.Currency) (domain.Amount, error) {
	l, err := im.findActive(c, id)
	if err != nil {
		return domain.ZeroAmount, err
	}
	return im.pricefeed.RequiredAmount(c, l.Price, currency)
}

func (im *impl) FindOne(c ctx.Ctx, id int64) (*listing.Listing, error) {
	return im.repo.FindOne(c, id)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	return im.repo.FindAll(c, opts...)
}
