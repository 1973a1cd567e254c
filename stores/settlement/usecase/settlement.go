package usecase

import (
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/custody"
	"github.com/x-xyz/nftmarket/domain/settlement"
	"github.com/x-xyz/nftmarket/service/txn"
)

type SettlementUseCaseCfg struct {
	Repo   settlement.Repo
	Ledger custody.FungibleLedger
	Runner txn.Runner

	// Marketplace is the custody account holding collected payments and escrow
	Marketplace        domain.Address
	DefaultRecipient   domain.Address
	DefaultBasisPoints int64
	Now                func() time.Time
}

type impl struct {
	repo        settlement.Repo
	ledger      custody.FungibleLedger
	runner      txn.Runner
	marketplace domain.Address
	defaults    settlement.FeeConfig
	now         func() time.Time
}

func New(cfg *SettlementUseCaseCfg) settlement.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		repo:        cfg.Repo,
		ledger:      cfg.Ledger,
		runner:      cfg.Runner,
		marketplace: cfg.Marketplace.ToLower(),
		defaults: settlement.FeeConfig{
			BasisPoints:  cfg.DefaultBasisPoints,
			FeeRecipient: cfg.DefaultRecipient.ToLower(),
		},
		now: now,
	}
}

func (im *impl) FeeConfig(c ctx.Ctx) (*settlement.FeeConfig, error) {
	cfg, err := im.repo.FindOne(c)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	} else if cfg == nil {
		d := im.defaults
		return &d, nil
	}
	return cfg, nil
}

func (im *impl) PlatformFee(c ctx.Ctx, amount domain.Amount) (domain.Amount, error) {
	cfg, err := im.FeeConfig(c)
	if err != nil {
		return domain.ZeroAmount, err
	}
	return cfg.Fee(amount), nil
}

func (im *impl) IsFeeRecipient(c ctx.Ctx, caller domain.Address) (bool, error) {
	cfg, err := im.FeeConfig(c)
	if err != nil {
		return false, err
	}
	return !caller.IsEmpty() && cfg.FeeRecipient.Equals(caller), nil
}

func (im *impl) SetPlatformFee(c ctx.Ctx, caller domain.Address, basisPoints int64) error {
	return im.runner.Run(c, "setPlatformFee", func(c ctx.Ctx) error {
		now := im.now()

		cfg, err := im.authorize(c, caller)
		if err != nil {
			return err
		}
		if basisPoints < 0 {
			return domain.ErrBadParamInput
		} else if basisPoints > settlement.MaxFeeBasisPoints {
			return domain.ErrFeeTooHigh
		}

		cfg.BasisPoints = basisPoints
		cfg.UpdatedAt = now
		if err := im.repo.Upsert(c, cfg); err != nil {
			c.WithField("err", err).Error("repo.Upsert failed")
			return err
		}
		c.WithFields(log.Fields{"caller": caller, "basisPoints": basisPoints}).Info("platform fee updated")
		return nil
	})
}

func (im *impl) UpdateFeeRecipient(c ctx.Ctx, caller, recipient domain.Address) error {
	return im.runner.Run(c, "updateFeeRecipient", func(c ctx.Ctx) error {
		now := im.now()

		cfg, err := im.authorize(c, caller)
		if err != nil {
			return err
		}
		if recipient.IsEmpty() {
			return domain.ErrInvalidAddress
		}

		cfg.FeeRecipient = recipient.ToLower()
		cfg.UpdatedAt = now
		if err := im.repo.Upsert(c, cfg); err != nil {
			c.WithField("err", err).Error("repo.Upsert failed")
			return err
		}
		c.WithFields(log.Fields{"caller": caller, "recipient": recipient}).Info("fee recipient updated")
		return nil
	})
}

func (im *impl) authorize(c ctx.Ctx, caller domain.Address) (*settlement.FeeConfig, error) {
	cfg, err := im.FeeConfig(c)
	if err != nil {
		return nil, err
	}
	if caller.IsEmpty() || !cfg.FeeRecipient.Equals(caller) {
		return nil, domain.ErrNotFeeRecipient
	}
	return cfg, nil
}

func (im *impl) CheckPayment(c ctx.Ctx, payer domain.Address, payment settlement.Payment, required domain.Amount) error {
	if payment.Currency.IsNative() {
		balance, err := im.ledger.BalanceOf(c, domain.NativeCurrency, payer)
		if err != nil {
			return err
		}
		if balance.Cmp(payment.NativeAmount) < 0 {
			return domain.ErrInsufficientBalance
		}
		if payment.NativeAmount.Cmp(required) < 0 {
			return domain.ErrInsufficientPayment
		}
		return nil
	}

	if !payment.NativeAmount.IsZero() {
		return domain.ErrUnexpectedNativeValue
	}

	allowance, err := im.ledger.Allowance(c, payment.Currency, payer, im.marketplace)
	if err != nil {
		return err
	}
	if allowance.Cmp(payment.TokenAmount) < 0 {
		return domain.ErrInsufficientAllowance
	}
	balance, err := im.ledger.BalanceOf(c, payment.Currency, payer)
	if err != nil {
		return err
	}
	if balance.Cmp(payment.TokenAmount) < 0 {
		return domain.ErrInsufficientBalance
	}
	if payment.TokenAmount.Cmp(required) < 0 {
		return domain.ErrInsufficientPayment
	}
	return nil
}

func (im *impl) Collect(c ctx.Ctx, payer domain.Address, payment settlement.Payment) error {
	amount := payment.Amount()
	if amount.IsZero() {
		return nil
	}

	if payment.Currency.IsNative() {
		if err := im.ledger.Transfer(c, domain.NativeCurrency, payer, im.marketplace, amount); err != nil {
			c.WithFields(log.Fields{"err": err, "payer": payer}).Error("ledger.Transfer failed")
			return err
		}
		return nil
	}

	if err := im.ledger.TransferFrom(c, payment.Currency, payer, im.marketplace, amount); err != nil {
		c.WithFields(log.Fields{"err": err, "payer": payer, "currency": payment.Currency}).Error("ledger.TransferFrom failed")
		return err
	}
	return nil
}

func (im *impl) Payout(c ctx.Ctx, currency domain.Currency, amount domain.Amount, seller domain.Address) (*settlement.Receipt, error) {
	cfg, err := im.FeeConfig(c)
	if err != nil {
		return nil, err
	}

	fee := cfg.Fee(amount)
	receipt := &settlement.Receipt{
		Currency:       currency.Normalize(),
		Amount:         amount,
		SellerReceived: amount.Sub(fee),
		FeeReceived:    fee,
	}

	if !receipt.SellerReceived.IsZero() {
		if err := im.ledger.Transfer(c, currency, im.marketplace, seller, receipt.SellerReceived); err != nil {
			c.WithFields(log.Fields{"err": err, "seller": seller}).Error("ledger.Transfer to seller failed")
			return nil, err
		}
	}
	if !fee.IsZero() {
		if err := im.ledger.Transfer(c, currency, im.marketplace, cfg.FeeRecipient, fee); err != nil {
			c.WithFields(log.Fields{"err": err, "recipient": cfg.FeeRecipient}).Error("ledger.Transfer to fee recipient failed")
			return nil, err
		}
	}
	return receipt, nil
}

func (im *impl) Refund(c ctx.Ctx, currency domain.Currency, amount domain.Amount, to domain.Address) error {
	if amount.IsZero() {
		return nil
	}
	if err := im.ledger.Transfer(c, currency, im.marketplace, to, amount); err != nil {
		c.WithFields(log.Fields{"err": err, "to": to}).Error("ledger.Transfer failed")
		return err
	}
	return nil
}
