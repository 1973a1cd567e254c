package usecase

import (
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/custody"
	"github.com/x-xyz/nftmarket/service/txn"
)

type CustodyUseCaseCfg struct {
	Assets    custody.AssetLedger
	Fungibles custody.FungibleLedger
	Runner    txn.Runner
}

type impl struct {
	assets    custody.AssetLedger
	fungibles custody.FungibleLedger
	runner    txn.Runner
}

func New(cfg *CustodyUseCaseCfg) custody.UseCase {
	return &impl{
		assets:    cfg.Assets,
		fungibles: cfg.Fungibles,
		runner:    cfg.Runner,
	}
}

func (im *impl) OwnerOf(c ctx.Ctx, asset domain.AssetId) (domain.Address, error) {
	return im.assets.OwnerOf(c, asset)
}

func (im *impl) BalanceOf(c ctx.Ctx, currency domain.Currency, holder domain.Address) (domain.Amount, error) {
	return im.fungibles.BalanceOf(c, currency, holder)
}

func (im *impl) Allowance(c ctx.Ctx, currency domain.Currency, owner, spender domain.Address) (domain.Amount, error) {
	return im.fungibles.Allowance(c, currency, owner, spender)
}

func (im *impl) MintAsset(c ctx.Ctx, asset domain.AssetId, owner domain.Address) error {
	return im.runner.Run(c, "mintAsset", func(c ctx.Ctx) error {
		return im.assets.Mint(c, asset, owner)
	})
}

func (im *impl) ApproveAsset(c ctx.Ctx, caller domain.Address, asset domain.AssetId, operator domain.Address) error {
	return im.runner.Run(c, "approveAsset", func(c ctx.Ctx) error {
		return im.assets.Approve(c, caller, asset, operator)
	})
}

func (im *impl) SetApprovalForAll(c ctx.Ctx, caller, contract, operator domain.Address, approved bool) error {
	return im.runner.Run(c, "setApprovalForAll", func(c ctx.Ctx) error {
		return im.assets.SetApprovalForAll(c, caller, contract, operator, approved)
	})
}

func (im *impl) Mint(c ctx.Ctx, currency domain.Currency, holder domain.Address, amount domain.Amount) error {
	return im.runner.Run(c, "mint", func(c ctx.Ctx) error {
		return im.fungibles.Mint(c, currency, holder, amount)
	})
}

func (im *impl) Approve(c ctx.Ctx, caller domain.Address, currency domain.Currency, spender domain.Address, amount domain.Amount) error {
	return im.runner.Run(c, "approve", func(c ctx.Ctx) error {
		return im.fungibles.Approve(c, currency, caller, spender, amount)
	})
}
