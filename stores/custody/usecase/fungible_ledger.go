package usecase

import (
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/custody"
)

type fungibleLedger struct {
	repo custody.BalanceRepo
}

// NewFungibleLedger keeps native and token balances in repo. Like the asset
// ledger it is not serialized on its own.
func NewFungibleLedger(repo custody.BalanceRepo) custody.FungibleLedger {
	return &fungibleLedger{repo: repo}
}

func (im *fungibleLedger) BalanceOf(c ctx.Ctx, currency domain.Currency, holder domain.Address) (domain.Amount, error) {
	b, err := im.repo.FindBalance(c, currency, holder)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "currency": currency, "holder": holder}).Error("repo.FindBalance failed")
		return domain.ZeroAmount, err
	} else if b == nil {
		return domain.ZeroAmount, nil
	}
	return b.Amount, nil
}

func (im *fungibleLedger) Allowance(c ctx.Ctx, currency domain.Currency, owner, spender domain.Address) (domain.Amount, error) {
	a, err := im.repo.FindAllowance(c, currency, owner, spender)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "currency": currency, "owner": owner}).Error("repo.FindAllowance failed")
		return domain.ZeroAmount, err
	} else if a == nil {
		return domain.ZeroAmount, nil
	}
	return a.Amount, nil
}

func (im *fungibleLedger) TransferFrom(c ctx.Ctx, currency domain.Currency, owner, spender domain.Address, amount domain.Amount) error {
	allowance, err := im.Allowance(c, currency, owner, spender)
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) < 0 {
		return domain.ErrInsufficientAllowance
	}
	if err := im.Transfer(c, currency, owner, spender, amount); err != nil {
		return err
	}
	return im.setAllowance(c, currency, owner, spender, allowance.Sub(amount))
}

func (im *fungibleLedger) Transfer(c ctx.Ctx, currency domain.Currency, from, to domain.Address, amount domain.Amount) error {
	if amount.Sign() < 0 {
		return domain.ErrBadParamInput
	}
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	fromBalance, err := im.BalanceOf(c, currency, from)
	if err != nil {
		return err
	}
	if fromBalance.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}
	if err := im.setBalance(c, currency, from, fromBalance.Sub(amount)); err != nil {
		return err
	}

	toBalance, err := im.BalanceOf(c, currency, to)
	if err != nil {
		return err
	}
	return im.setBalance(c, currency, to, toBalance.Add(amount))
}

func (im *fungibleLedger) Mint(c ctx.Ctx, currency domain.Currency, holder domain.Address, amount domain.Amount) error {
	if amount.Sign() < 0 {
		return domain.ErrBadParamInput
	}
	if holder.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	balance, err := im.BalanceOf(c, currency, holder)
	if err != nil {
		return err
	}
	return im.setBalance(c, currency, holder, balance.Add(amount))
}

func (im *fungibleLedger) Approve(c ctx.Ctx, currency domain.Currency, owner, spender domain.Address, amount domain.Amount) error {
	if amount.Sign() < 0 {
		return domain.ErrBadParamInput
	}
	if spender.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	return im.setAllowance(c, currency, owner, spender, amount)
}

func (im *fungibleLedger) setBalance(c ctx.Ctx, currency domain.Currency, holder domain.Address, amount domain.Amount) error {
	if err := im.repo.UpsertBalance(c, &custody.Balance{Currency: currency, Holder: holder, Amount: amount}); err != nil {
		c.WithFields(log.Fields{"err": err, "currency": currency, "holder": holder}).Error("repo.UpsertBalance failed")
		return err
	}
	return nil
}

func (im *fungibleLedger) setAllowance(c ctx.Ctx, currency domain.Currency, owner, spender domain.Address, amount domain.Amount) error {
	if err := im.repo.UpsertAllowance(c, &custody.Allowance{Currency: currency, Owner: owner, Spender: spender, Amount: amount}); err != nil {
		c.WithFields(log.Fields{"err": err, "currency": currency, "owner": owner}).Error("repo.UpsertAllowance failed")
		return err
	}
	return nil
}
