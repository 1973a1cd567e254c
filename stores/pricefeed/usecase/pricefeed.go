package usecase

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/pricefeed"
	"github.com/x-xyz/nftmarket/domain/settlement"
	"github.com/x-xyz/nftmarket/service/chainlink"
	"github.com/x-xyz/nftmarket/service/txn"
)

type PriceFeedUseCaseCfg struct {
	Repo       pricefeed.Repo
	Oracle     chainlink.Chainlink
	Settlement settlement.UseCase
	Runner     txn.Runner
	ChainId    domain.ChainId

	// NativeDecimals is the number of decimals of one reference unit in native currency
	NativeDecimals int32
	// MaxQuoteAge rejects older quotes, 0 disables the check
	MaxQuoteAge time.Duration
	Now         func() time.Time
}

type impl struct {
	repo           pricefeed.Repo
	oracle         chainlink.Chainlink
	settlement     settlement.UseCase
	runner         txn.Runner
	chainId        domain.ChainId
	nativeDecimals int32
	nativeScale    *big.Int
	maxQuoteAge    time.Duration
	now            func() time.Time
}

func New(cfg *PriceFeedUseCaseCfg) pricefeed.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		repo:           cfg.Repo,
		oracle:         cfg.Oracle,
		settlement:     cfg.Settlement,
		runner:         cfg.Runner,
		chainId:        cfg.ChainId,
		nativeDecimals: cfg.NativeDecimals,
		nativeScale:    pow10(cfg.NativeDecimals),
		maxQuoteAge:    cfg.MaxQuoteAge,
		now:            now,
	}
}

func pow10(n int32) *big.Int {
	return new(big.Int).Exp(domain.Big10, big.NewInt(int64(n)), nil)
}

func (im *impl) RequiredAmount(c ctx.Ctx, referencePrice domain.Amount, currency domain.Currency) (domain.Amount, error) {
	if currency.IsNative() {
		return referencePrice.MulDiv(im.nativeScale, big.NewInt(1)), nil
	}

	p, err := im.GetLatestPrice(c, currency)
	if err != nil {
		return domain.ZeroAmount, err
	}

	// truncates toward zero, the payer may be short by less than one unit
	return referencePrice.MulDiv(pow10(p.Decimals), p.Answer.BigInt()), nil
}

func (im *impl) NormalizedValue(c ctx.Ctx, amount domain.Amount, currency domain.Currency) (domain.Value, error) {
	if currency.IsNative() {
		return domain.NewValue(decimal.NewFromBigInt(amount.BigInt(), -im.nativeDecimals)), nil
	}

	p, err := im.GetLatestPrice(c, currency)
	if err != nil {
		return domain.Value{}, err
	}

	product := new(big.Int).Mul(amount.BigInt(), p.Answer.BigInt())
	return domain.NewValue(decimal.NewFromBigInt(product, -p.Decimals)), nil
}

func (im *impl) GetLatestPrice(c ctx.Ctx, currency domain.Currency) (*pricefeed.Price, error) {
	if currency.IsNative() {
		return &pricefeed.Price{
			Currency:  domain.NativeCurrency,
			Answer:    domain.NewAmount(1),
			Value:     domain.NewValue(decimal.NewFromInt(1)),
			UpdatedAt: im.now(),
		}, nil
	}

	binding, err := im.repo.FindOne(c, currency)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "currency": currency}).Error("repo.FindOne failed")
		return nil, err
	} else if binding == nil {
		return nil, domain.ErrNoPriceFeed
	}

	q, err := im.oracle.LatestRoundData(c, im.chainId, binding.Feed)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "feed": binding.Feed}).Error("oracle.LatestRoundData failed")
		return nil, xerrors.Errorf("%w: %s", domain.ErrInvalidFeed, err.Error())
	}
	if q.Answer == nil || q.Answer.Sign() <= 0 || !q.Valid {
		return nil, domain.ErrInvalidFeed
	}
	if im.maxQuoteAge > 0 && im.now().Sub(q.UpdatedAt) > im.maxQuoteAge {
		c.WithFields(log.Fields{"feed": binding.Feed, "updatedAt": q.UpdatedAt}).Warn("stale quote")
		return nil, domain.ErrStaleQuote
	}

	answer := domain.NewAmountFromBig(q.Answer)
	return &pricefeed.Price{
		Currency:  currency.Normalize(),
		Feed:      binding.Feed,
		Answer:    answer,
		Decimals:  q.Decimals,
		Value:     domain.NewValue(decimal.NewFromBigInt(q.Answer, -q.Decimals)),
		UpdatedAt: q.UpdatedAt,
	}, nil
}

func (im *impl) authorize(c ctx.Ctx, caller domain.Address, currency domain.Currency) error {
	if ok, err := im.settlement.IsFeeRecipient(c, caller); err != nil {
		return err
	} else if !ok {
		return domain.ErrNotFeeRecipient
	}
	if currency.IsNative() {
		return domain.ErrInvalidCurrency
	}
	return nil
}

func (im *impl) SetPriceFeed(c ctx.Ctx, caller domain.Address, currency domain.Currency, feed domain.Address) error {
	return im.runner.Run(c, "setPriceFeed", func(c ctx.Ctx) error {
		now := im.now()

		if err := im.authorize(c, caller, currency); err != nil {
			return err
		}
		if feed.IsEmpty() {
			return domain.ErrInvalidPriceFeed
		}

		q, err := im.oracle.LatestRoundData(c, im.chainId, feed)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "feed": feed}).Warn("probing feed failed")
			return xerrors.Errorf("%w: %s", domain.ErrInvalidPriceFeed, err.Error())
		} else if q.Answer == nil || q.Answer.Sign() <= 0 {
			return domain.ErrInvalidPriceFeed
		}

		if err := im.repo.Upsert(c, &pricefeed.Binding{
			Currency:  currency,
			Feed:      feed,
			UpdatedBy: caller,
			UpdatedAt: now,
		}); err != nil {
			c.WithField("err", err).Error("repo.Upsert failed")
			return err
		}
		return nil
	})
}

func (im *impl) RemovePriceFeed(c ctx.Ctx, caller domain.Address, currency domain.Currency) error {
	return im.runner.Run(c, "removePriceFeed", func(c ctx.Ctx) error {
		if err := im.authorize(c, caller, currency); err != nil {
			return err
		}

		if binding, err := im.repo.FindOne(c, currency); err != nil {
			c.WithField("err", err).Error("repo.FindOne failed")
			return err
		} else if binding == nil {
			return domain.ErrNoPriceFeed
		}

		if err := im.repo.Remove(c, currency); err != nil {
			c.WithField("err", err).Error("repo.Remove failed")
			return err
		}
		return nil
	})
}

func (im *impl) FindAll(c ctx.Ctx) ([]*pricefeed.Binding, error) {
	return im.repo.FindAll(c)
}
