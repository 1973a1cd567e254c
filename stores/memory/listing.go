package memory

import (
	"sort"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/listing"
	"github.com/x-xyz/nftmarket/service/query"
)

type listingRepo struct {
	s *Store
}

func (s *Store) Listings() listing.Repo {
	return &listingRepo{s}
}

func (r *listingRepo) Insert(c ctx.Ctx, l *listing.Listing) error {
	var err error
	r.s.write(func(t *tables) {
		if _, ok := t.listings[l.Id]; ok {
			err = query.ErrDuplicateKey
			return
		}
		row := *l
		row.NftContract = row.NftContract.ToLower()
		row.Seller = row.Seller.ToLower()
		t.listings[l.Id] = row
	})
	return err
}

func (r *listingRepo) FindOne(c ctx.Ctx, id int64) (*listing.Listing, error) {
	var res *listing.Listing
	r.s.read(c, func(t *tables) {
		if row, ok := t.listings[id]; ok {
			res = &row
		}
	})
	if res == nil {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (r *listingRepo) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	res := []*listing.Listing{}
	r.s.read(c, func(t *tables) {
		for _, row := range t.listings {
			if opts.Seller != nil && row.Seller != *opts.Seller {
				continue
			}
			if opts.NftContract != nil && row.NftContract != *opts.NftContract {
				continue
			}
			if opts.TokenId != nil && row.TokenId != *opts.TokenId {
				continue
			}
			if opts.Active != nil && row.Active != *opts.Active {
				continue
			}
			row := row
			res = append(res, &row)
		}
	})
	sort.Slice(res, func(i, j int) bool { return res[i].Id < res[j].Id })

	start, end := page(len(res), opts.Offset, opts.Limit)
	return res[start:end], nil
}

func (r *listingRepo) Patch(c ctx.Ctx, id int64, patchable *listing.PatchableListing) error {
	var err error
	r.s.write(func(t *tables) {
		row, ok := t.listings[id]
		if !ok {
			err = domain.ErrNotFound
			return
		}
		if patchable.Price != nil {
			row.Price = *patchable.Price
		}
		if patchable.Active != nil {
			row.Active = *patchable.Active
		}
		if patchable.UpdatedAt != nil {
			row.UpdatedAt = *patchable.UpdatedAt
		}
		t.listings[id] = row
	})
	return err
}
