package usecase

import (
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/custody"
)

type assetLedger struct {
	repo custody.HoldingRepo
	now  func() time.Time
}

// NewAssetLedger keeps asset ownership in repo. Calls are not serialized, callers
// run them inside a marketplace call.
func NewAssetLedger(repo custody.HoldingRepo, now func() time.Time) custody.AssetLedger {
	if now == nil {
		now = time.Now
	}
	return &assetLedger{repo: repo, now: now}
}

func (im *assetLedger) find(c ctx.Ctx, asset domain.AssetId) (*custody.Holding, error) {
	h, err := im.repo.FindOne(c, asset)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "asset": asset}).Error("repo.FindOne failed")
		return nil, err
	} else if h == nil || h.Owner.IsEmpty() {
		return nil, domain.ErrNonexistentAsset
	}
	return h, nil
}

func (im *assetLedger) OwnerOf(c ctx.Ctx, asset domain.AssetId) (domain.Address, error) {
	h, err := im.find(c, asset)
	if err != nil {
		return "", err
	}
	return h.Owner, nil
}

func (im *assetLedger) IsApprovedForOperator(c ctx.Ctx, asset domain.AssetId, operator domain.Address) (bool, error) {
	h, err := im.find(c, asset)
	if err != nil {
		return false, err
	}
	return im.isApproved(c, h, operator)
}

func (im *assetLedger) isApproved(c ctx.Ctx, h *custody.Holding, operator domain.Address) (bool, error) {
	if !h.Approved.IsEmpty() && h.Approved.Equals(operator) {
		return true, nil
	}
	a, err := im.repo.FindOperatorApproval(c, h.Contract, h.Owner, operator)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "asset": h.AssetId}).Error("repo.FindOperatorApproval failed")
		return false, err
	}
	return a != nil && a.Approved, nil
}

func (im *assetLedger) Transfer(c ctx.Ctx, operator domain.Address, asset domain.AssetId, from, to domain.Address) error {
	h, err := im.find(c, asset)
	if err != nil {
		return err
	}
	if !h.Owner.Equals(from) {
		return domain.ErrNotOwner
	}
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if !operator.Equals(h.Owner) {
		if ok, err := im.isApproved(c, h, operator); err != nil {
			return err
		} else if !ok {
			return domain.ErrNotApproved
		}
	}

	h.Owner = to
	// a single asset approval does not survive a transfer
	h.Approved = ""
	h.UpdatedAt = im.now()
	if err := im.repo.Upsert(c, h); err != nil {
		c.WithFields(log.Fields{"err": err, "asset": asset}).Error("repo.Upsert failed")
		return err
	}
	return nil
}

func (im *assetLedger) Mint(c ctx.Ctx, asset domain.AssetId, owner domain.Address) error {
	if asset.Contract.IsEmpty() || len(asset.TokenId) == 0 {
		return domain.ErrInvalidAsset
	}
	if owner.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if h, err := im.repo.FindOne(c, asset); err != nil {
		c.WithFields(log.Fields{"err": err, "asset": asset}).Error("repo.FindOne failed")
		return err
	} else if h != nil && !h.Owner.IsEmpty() {
		return domain.ErrInvalidAsset
	}

	if err := im.repo.Upsert(c, &custody.Holding{AssetId: asset, Owner: owner, UpdatedAt: im.now()}); err != nil {
		c.WithFields(log.Fields{"err": err, "asset": asset}).Error("repo.Upsert failed")
		return err
	}
	return nil
}

func (im *assetLedger) Approve(c ctx.Ctx, caller domain.Address, asset domain.AssetId, operator domain.Address) error {
	h, err := im.find(c, asset)
	if err != nil {
		return err
	}
	if !h.Owner.Equals(caller) {
		return domain.ErrNotOwner
	}

	h.Approved = operator
	h.UpdatedAt = im.now()
	if err := im.repo.Upsert(c, h); err != nil {
		c.WithFields(log.Fields{"err": err, "asset": asset}).Error("repo.Upsert failed")
		return err
	}
	return nil
}

func (im *assetLedger) SetApprovalForAll(c ctx.Ctx, caller, contract, operator domain.Address, approved bool) error {
	if contract.IsEmpty() || operator.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if err := im.repo.UpsertOperatorApproval(c, &custody.OperatorApproval{
		Contract: contract,
		Owner:    caller,
		Operator: operator,
		Approved: approved,
	}); err != nil {
		c.WithFields(log.Fields{"err": err, "contract": contract}).Error("repo.UpsertOperatorApproval failed")
		return err
	}
	return nil
}
