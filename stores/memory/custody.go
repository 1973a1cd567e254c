package memory

import (
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/custody"
)

type holdingRepo struct {
	s *Store
}

func (s *Store) Holdings() custody.HoldingRepo {
	return &holdingRepo{s}
}

func (r *holdingRepo) FindOne(c ctx.Ctx, asset domain.AssetId) (*custody.Holding, error) {
	var res *custody.Holding
	r.s.read(c, func(t *tables) {
		if row, ok := t.holdings[asset.ToLower()]; ok {
			res = &row
		}
	})
	return res, nil
}

func (r *holdingRepo) Upsert(c ctx.Ctx, holding *custody.Holding) error {
	r.s.write(func(t *tables) {
		row := *holding
		row.AssetId = row.AssetId.ToLower()
		row.Owner = row.Owner.ToLower()
		row.Approved = row.Approved.ToLower()
		t.holdings[row.AssetId] = row
	})
	return nil
}

func (r *holdingRepo) FindOperatorApproval(c ctx.Ctx, contract, owner, operator domain.Address) (*custody.OperatorApproval, error) {
	var res *custody.OperatorApproval
	r.s.read(c, func(t *tables) {
		if row, ok := t.operators[operatorKey{contract.ToLower(), owner.ToLower(), operator.ToLower()}]; ok {
			res = &row
		}
	})
	return res, nil
}

func (r *holdingRepo) UpsertOperatorApproval(c ctx.Ctx, approval *custody.OperatorApproval) error {
	r.s.write(func(t *tables) {
		row := *approval
		row.Contract = row.Contract.ToLower()
		row.Owner = row.Owner.ToLower()
		row.Operator = row.Operator.ToLower()
		t.operators[operatorKey{row.Contract, row.Owner, row.Operator}] = row
	})
	return nil
}

type balanceRepo struct {
	s *Store
}

func (s *Store) Balances() custody.BalanceRepo {
	return &balanceRepo{s}
}

func (r *balanceRepo) FindBalance(c ctx.Ctx, currency domain.Currency, holder domain.Address) (*custody.Balance, error) {
	var res *custody.Balance
	r.s.read(c, func(t *tables) {
		if row, ok := t.balances[balanceKey{currency.Normalize(), holder.ToLower()}]; ok {
			res = &row
		}
	})
	return res, nil
}

func (r *balanceRepo) UpsertBalance(c ctx.Ctx, balance *custody.Balance) error {
	r.s.write(func(t *tables) {
		row := *balance
		row.Currency = row.Currency.Normalize()
		row.Holder = row.Holder.ToLower()
		t.balances[balanceKey{row.Currency, row.Holder}] = row
	})
	return nil
}

func (r *balanceRepo) FindAllowance(c ctx.Ctx, currency domain.Currency, owner, spender domain.Address) (*custody.Allowance, error) {
	var res *custody.Allowance
	r.s.read(c, func(t *tables) {
		if row, ok := t.allowances[allowanceKey{currency.Normalize(), owner.ToLower(), spender.ToLower()}]; ok {
			res = &row
		}
	})
	return res, nil
}

func (r *balanceRepo) UpsertAllowance(c ctx.Ctx, allowance *custody.Allowance) error {
	r.s.write(func(t *tables) {
		row := *allowance
		row.Currency = row.Currency.Normalize()
		row.Owner = row.Owner.ToLower()
		row.Spender = row.Spender.ToLower()
		t.allowances[allowanceKey{row.Currency, row.Owner, row.Spender}] = row
	})
	return nil
}
