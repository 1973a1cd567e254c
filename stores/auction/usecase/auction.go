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

type AuctionUseCaseCfg struct {
	Repo       auction.Repo
	EscrowRepo auction.EscrowRepo
	Listings   listing.Repo
	Sequence   domain.SequenceRepo
	Assets     custody.AssetLedger
	PriceFeed  pricefeed.UseCase
	Settlement settlement.UseCase
	Event      event.UseCase
	Runner     txn.Runner

	Marketplace domain.Address
	Now         func() time.Time
}

type impl struct {
	repo        auction.Repo
	escrow      auction.EscrowRepo
	listings    listing.Repo
	seq         domain.SequenceRepo
	assets      custody.AssetLedger
	pricefeed   pricefeed.UseCase
	settlement  settlement.UseCase
	event       event.UseCase
	runner      txn.Runner
	marketplace domain.Address
	now         func() time.Time
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		repo:        cfg.Repo,
		escrow:      cfg.EscrowRepo,
		listings:    cfg.Listings,
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

func (im *impl) Create(c ctx.Ctx, caller domain.Address, asset domain.AssetId, startPrice domain.Amount, durationHours int64) (*auction.Auction, error) {
	var res *auction.Auction
	err := im.runner.Run(c, "createAuction", func(c ctx.Ctx) error {
		now := im.now()

		if startPrice.Sign() <= 0 {
			return domain.ErrInvalidStartPrice
		}
		if durationHours <= 0 {
			return domain.ErrInvalidDuration
		}
		if asset.Contract.IsEmpty() {
			return domain.ErrInvalidAsset
		}

		owner, err := im.assets.OwnerOf(c, asset)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "asset": asset}).Warn("assets.OwnerOf failed")
			return err
		}
		if !owner.Equals(caller) {
			return domain.ErrNotOwner
		}
		if ok, err := im.assets.IsApprovedForOperator(c, asset, im.marketplace); err != nil {
			c.WithFields(log.Fields{"err": err, "asset": asset}).Warn("assets.IsApprovedForOperator failed")
			return err
		} else if !ok {
			return domain.ErrNotApproved
		}
		if err := im.checkNotEngaged(c, asset); err != nil {
			return err
		}

		id, err := im.seq.Next(c, domain.SequenceAuction)
		if err != nil {
			c.WithField("err", err).Error("seq.Next failed")
			return err
		}

		a := &auction.Auction{
			Id:          id,
			NftContract: asset.Contract.ToLower(),
			TokenId:     asset.TokenId,
			Seller:      caller.ToLower(),
			StartPrice:  startPrice,
			EndTime:     now.Add(time.Duration(durationHours) * time.Hour),
			Active:      true,
			CreatedAt:   now,
		}
		if err := im.repo.Insert(c, a); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.Insert failed")
			return err
		}
		if err := im.event.Emit(c, event.AuctionCreated(id, a.Seller, a.Asset(), startPrice, a.EndTime)); err != nil {
			return err
		}

		res = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// checkNotEngaged rejects an asset that is already on sale or under auction
func (im *impl) checkNotEngaged(c ctx.Ctx, asset domain.AssetId) error {
	running, err := im.repo.FindAll(c, auction.WithAsset(asset), auction.WithActive(true), auction.WithPagination(0, 1))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "asset": asset}).Error("repo.FindAll failed")
		return err
	}
	if len(running) > 0 {
		return domain.ErrAssetEngaged
	}

	listed, err := im.listings.FindAll(c, listing.WithAsset(asset), listing.WithActive(true), listing.WithPagination(0, 1))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "asset": asset}).Error("listings.FindAll failed")
		return err
	}
	if len(listed) > 0 {
		return domain.ErrAssetEngaged
	}
	return nil
}

// deliverable reports whether the marketplace can still move the asset from the seller
func (im *impl) deliverable(c ctx.Ctx, a *auction.Auction) (bool, error) {
	owner, err := im.assets.OwnerOf(c, a.Asset())
	if errors.Is(err, domain.ErrNonexistentAsset) {
		return false, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": a.Id}).Error("assets.OwnerOf failed")
		return false, err
	}
	if !owner.Equals(a.Seller) {
		return false, nil
	}
	ok, err := im.assets.IsApprovedForOperator(c, a.Asset(), im.marketplace)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": a.Id}).Error("assets.IsApprovedForOperator failed")
		return false, err
	}
	return ok, nil
}

func (im *impl) findActive(c ctx.Ctx, id int64) (*auction.Auction, error) {
	a, err := im.repo.FindOne(c, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotActive
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.FindOne failed")
		return nil, err
	}
	if !a.Active {
		return nil, domain.ErrNotActive
	}
	return a, nil
}

// credit adds amount to the refundable balance of key
func (im *impl) credit(c ctx.Ctx, key auction.EscrowKey, amount domain.Amount, now time.Time) error {
	entry, err := im.escrow.FindOne(c, key)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("escrow.FindOne failed")
		return err
	}
	balance := domain.ZeroAmount
	if entry != nil {
		balance = entry.RefundableAmount
	}
	if err := im.escrow.Upsert(c, &auction.EscrowEntry{
		EscrowKey:        key,
		RefundableAmount: balance.Add(amount),
		UpdatedAt:        now,
	}); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("escrow.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) PlaceBid(c ctx.Ctx, caller domain.Address, id int64, payment settlement.Payment) error {
	return im.runner.Run(c, "placeBid", func(c ctx.Ctx) error {
		now := im.now()
		caller = caller.ToLower()
		payment.Currency = payment.Currency.Normalize()

		// checks
		a, err := im.findActive(c, id)
		if err != nil {
			return err
		}
		if !now.Before(a.EndTime) {
			return domain.ErrAuctionEnded
		}
		if a.Seller.Equals(caller) {
			return domain.ErrSellerCannotBid
		}
		if !payment.Currency.IsNative() && payment.NativeAmount.Sign() > 0 {
			return domain.ErrUnexpectedNativeValue
		}

		amount := payment.Amount()
		value, err := im.pricefeed.NormalizedValue(c, amount, payment.Currency)
		if err != nil {
			return err
		}
		if !value.GreaterThan(a.Floor()) {
			return domain.ErrBidTooLow
		}
		if err := im.settlement.CheckPayment(c, caller, payment, domain.ZeroAmount); err != nil {
			return err
		}

		// effects
		if a.HasBid() {
			key := auction.EscrowKey{AuctionId: id, Bidder: a.HighestBidder, Currency: a.HighestBidCurrency}
			if err := im.credit(c, key, a.HighestBidAmount, now); err != nil {
				return err
			}
		}
		if err := im.repo.Patch(c, id, &auction.PatchableAuction{
			HighestBidder:      &caller,
			HighestBidAmount:   &amount,
			HighestBidCurrency: &payment.Currency,
			HighestBidValue:    &value,
		}); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.Patch failed")
			return err
		}
		if err := im.event.Emit(c, event.BidPlaced(id, caller, payment.Currency, value)); err != nil {
			return err
		}

		// interactions
		return im.settlement.Collect(c, caller, payment)
	})
}

func (im *impl) WithdrawBid(c ctx.Ctx, caller domain.Address, id int64, currency domain.Currency) (domain.Amount, error) {
	res := domain.ZeroAmount
	err := im.runner.Run(c, "withdrawBid", func(c ctx.Ctx) error {
		key := auction.EscrowKey{AuctionId: id, Bidder: caller, Currency: currency}.ToLower()

		entry, err := im.escrow.FindOne(c, key)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "key": key}).Error("escrow.FindOne failed")
			return err
		}
		if entry == nil || entry.RefundableAmount.Sign() <= 0 {
			return domain.ErrNoPendingReturn
		}
		amount := entry.RefundableAmount

		// zero the entry before paying out
		if err := im.escrow.Upsert(c, &auction.EscrowEntry{
			EscrowKey:        key,
			RefundableAmount: domain.ZeroAmount,
			UpdatedAt:        im.now(),
		}); err != nil {
			c.WithFields(log.Fields{"err": err, "key": key}).Error("escrow.Upsert failed")
			return err
		}

		if err := im.settlement.Refund(c, key.Currency, amount, key.Bidder); err != nil {
			return err
		}

		res = amount
		return nil
	})
	if err != nil {
		return domain.ZeroAmount, err
	}
	return res, nil
}

func (im *impl) EndAuction(c ctx.Ctx, id int64) error {
	return im.runner.Run(c, "endAuction", func(c ctx.Ctx) error {
		now := im.now()

		a, err := im.findActive(c, id)
		if err != nil {
			return err
		}
		if now.Before(a.EndTime) {
			return domain.ErrNotYetEnded
		}

		if err := im.repo.Patch(c, id, &auction.PatchableAuction{Active: ptr.Bool(false)}); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.Patch failed")
			return err
		}

		if !a.HasBid() {
			return im.event.Emit(c, event.AuctionEnded(id, domain.EmptyAddress, nil, domain.ZeroAmount))
		}

		ok, err := im.deliverable(c, a)
		if err != nil {
			return err
		}
		if !ok {
			// the winning bid becomes withdrawable and the auction closes without a sale
			c.WithFields(log.Fields{"id": id, "bidder": a.HighestBidder, "asset": a.Asset()}).Warn("asset not deliverable, highest bid refunded")
			key := auction.EscrowKey{AuctionId: id, Bidder: a.HighestBidder, Currency: a.HighestBidCurrency}.ToLower()
			if err := im.credit(c, key, a.HighestBidAmount, now); err != nil {
				return err
			}
			return im.event.Emit(c, event.AuctionEnded(id, domain.EmptyAddress, nil, domain.ZeroAmount))
		}

		currency := a.HighestBidCurrency
		if err := im.event.Emit(c, event.AuctionEnded(id, a.HighestBidder, &currency, a.HighestBidAmount)); err != nil {
			return err
		}

		receipt, err := im.settlement.Payout(c, currency, a.HighestBidAmount, a.Seller)
		if err != nil {
			return err
		}
		if err := im.assets.Transfer(c, im.marketplace, a.Asset(), a.Seller, a.HighestBidder); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("assets.Transfer failed")
			return err
		}

		c.WithFields(log.Fields{
			"id":       id,
			"winner":   a.HighestBidder,
			"currency": currency,
			"amount":   a.HighestBidAmount,
			"fee":      receipt.FeeReceived,
		}).Info("auction settled")
		return nil
	})
}

func (im *impl) FindOne(c ctx.Ctx, id int64) (*auction.Auction, error) {
	return im.repo.FindOne(c, id)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	return im.repo.FindAll(c, opts...)
}

func (im *impl) PendingReturn(c ctx.Ctx, id int64, bidder domain.Address, currency domain.Currency) (domain.Amount, error) {
	entry, err := im.escrow.FindOne(c, auction.EscrowKey{AuctionId: id, Bidder: bidder, Currency: currency}.ToLower())
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id, "bidder": bidder}).Error("escrow.FindOne failed")
		return domain.ZeroAmount, err
	}
	if entry == nil {
		return domain.ZeroAmount, nil
	}
	return entry.RefundableAmount, nil
}

func (im *impl) PendingReturns(c ctx.Ctx, id int64) ([]*auction.EscrowEntry, error) {
	return im.escrow.FindAll(c, id)
}
