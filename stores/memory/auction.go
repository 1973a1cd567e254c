package memory

import (
	"sort"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/auction"
	"github.com/x-xyz/nftmarket/service/query"
)

type auctionRepo struct {
	s *Store
}

func (s *Store) Auctions() auction.Repo {
	return &auctionRepo{s}
}

func (r *auctionRepo) Insert(c ctx.Ctx, a *auction.Auction) error {
	var err error
	r.s.write(func(t *tables) {
		if _, ok := t.auctions[a.Id]; ok {
			err = query.ErrDuplicateKey
			return
		}
		row := *a
		row.NftContract = row.NftContract.ToLower()
		row.Seller = row.Seller.ToLower()
		t.auctions[a.Id] = row
	})
	return err
}

func (r *auctionRepo) FindOne(c ctx.Ctx, id int64) (*auction.Auction, error) {
	var res *auction.Auction
	r.s.read(c, func(t *tables) {
		if row, ok := t.auctions[id]; ok {
			res = &row
		}
	})
	if res == nil {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (r *auctionRepo) FindAll(c ctx.Ctx, optFns ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	res := []*auction.Auction{}
	r.s.read(c, func(t *tables) {
		for _, row := range t.auctions {
			if opts.Seller != nil && row.Seller != *opts.Seller {
				continue
			}
			if opts.HighestBidder != nil && row.HighestBidder != *opts.HighestBidder {
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
			if opts.EndedBefore != nil && row.EndTime.After(*opts.EndedBefore) {
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

func (r *auctionRepo) Patch(c ctx.Ctx, id int64, patchable *auction.PatchableAuction) error {
	var err error
	r.s.write(func(t *tables) {
		row, ok := t.auctions[id]
		if !ok {
			err = domain.ErrNotFound
			return
		}
		if patchable.HighestBidder != nil {
			row.HighestBidder = patchable.HighestBidder.ToLower()
		}
		if patchable.HighestBidAmount != nil {
			row.HighestBidAmount = *patchable.HighestBidAmount
		}
		if patchable.HighestBidCurrency != nil {
			row.HighestBidCurrency = patchable.HighestBidCurrency.Normalize()
		}
		if patchable.HighestBidValue != nil {
			row.HighestBidValue = *patchable.HighestBidValue
		}
		if patchable.Active != nil {
			row.Active = *patchable.Active
		}
		t.auctions[id] = row
	})
	return err
}

type escrowRepo struct {
	s *Store
}

func (s *Store) Escrow() auction.EscrowRepo {
	return &escrowRepo{s}
}

func (r *escrowRepo) FindOne(c ctx.Ctx, key auction.EscrowKey) (*auction.EscrowEntry, error) {
	var res *auction.EscrowEntry
	r.s.read(c, func(t *tables) {
		if row, ok := t.escrow[key.ToLower()]; ok {
			res = &row
		}
	})
	return res, nil
}

func (r *escrowRepo) FindAll(c ctx.Ctx, auctionId int64) ([]*auction.EscrowEntry, error) {
	res := []*auction.EscrowEntry{}
	r.s.read(c, func(t *tables) {
		for k, row := range t.escrow {
			if k.AuctionId != auctionId {
				continue
			}
			row := row
			res = append(res, &row)
		}
	})
	sort.Slice(res, func(i, j int) bool {
		if res[i].Bidder != res[j].Bidder {
			return res[i].Bidder < res[j].Bidder
		}
		return res[i].Currency < res[j].Currency
	})
	return res, nil
}

func (r *escrowRepo) Upsert(c ctx.Ctx, entry *auction.EscrowEntry) error {
	r.s.write(func(t *tables) {
		row := *entry
		row.EscrowKey = entry.EscrowKey.ToLower()
		t.escrow[row.EscrowKey] = row
	})
	return nil
}
