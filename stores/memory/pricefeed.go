package memory

import (
	"sort"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/pricefeed"
	"github.com/x-xyz/nftmarket/service/query"
)

type priceFeedRepo struct {
	s *Store
}

func (s *Store) PriceFeeds() pricefeed.Repo {
	return &priceFeedRepo{s}
}

func (r *priceFeedRepo) FindOne(c ctx.Ctx, currency domain.Currency) (*pricefeed.Binding, error) {
	var res *pricefeed.Binding
	r.s.read(c, func(t *tables) {
		if row, ok := t.bindings[currency.Normalize()]; ok {
			res = &row
		}
	})
	return res, nil
}

func (r *priceFeedRepo) FindAll(c ctx.Ctx) ([]*pricefeed.Binding, error) {
	res := []*pricefeed.Binding{}
	r.s.read(c, func(t *tables) {
		for _, row := range t.bindings {
			row := row
			res = append(res, &row)
		}
	})
	sort.Slice(res, func(i, j int) bool { return res[i].Currency < res[j].Currency })
	return res, nil
}

func (r *priceFeedRepo) Upsert(c ctx.Ctx, binding *pricefeed.Binding) error {
	r.s.write(func(t *tables) {
		row := *binding
		row.Currency = row.Currency.Normalize()
		row.Feed = row.Feed.ToLower()
		row.UpdatedBy = row.UpdatedBy.ToLower()
		t.bindings[row.Currency] = row
	})
	return nil
}

func (r *priceFeedRepo) Remove(c ctx.Ctx, currency domain.Currency) error {
	var err error
	r.s.write(func(t *tables) {
		if _, ok := t.bindings[currency.Normalize()]; !ok {
			err = query.ErrNotFound
			return
		}
		delete(t.bindings, currency.Normalize())
	})
	return err
}
