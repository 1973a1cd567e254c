package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/listing"
)

func TestRollback(t *testing.T) {
	req := require.New(t)
	s := NewStore()
	c := ctx.Background()
	repo := s.Listings()

	req.NoError(repo.Insert(c, &listing.Listing{Id: 1, Seller: "0xA", Price: domain.NewAmount(1), Active: true}))

	boom := errors.New("boom")
	err := s.RunWithTransaction(c, func(c ctx.Ctx) error {
		active := false
		req.NoError(repo.Patch(c, 1, &listing.PatchableListing{Active: &active}))
		req.NoError(repo.Insert(c, &listing.Listing{Id: 2}))
		id, err := s.Sequence().Next(c, domain.SequenceListing)
		req.NoError(err)
		req.Equal(int64(1), id)
		return boom
	})
	req.ErrorIs(err, boom)

	l, err := repo.FindOne(c, 1)
	req.NoError(err)
	req.True(l.Active)
	_, err = repo.FindOne(c, 2)
	req.ErrorIs(err, domain.ErrNotFound)

	id, err := s.Sequence().Next(c, domain.SequenceListing)
	req.NoError(err)
	req.Equal(int64(1), id)
}

func TestListingFindAll(t *testing.T) {
	req := require.New(t)
	s := NewStore()
	c := ctx.Background()
	repo := s.Listings()

	for i := int64(1); i <= 5; i++ {
		seller := domain.Address("0xa")
		if i%2 == 0 {
			seller = "0xb"
		}
		req.NoError(repo.Insert(c, &listing.Listing{Id: i, Seller: seller, Active: i != 5}))
	}

	res, err := repo.FindAll(c, listing.WithSeller("0xA"), listing.WithActive(true))
	req.NoError(err)
	req.Len(res, 2)
	req.Equal(int64(1), res[0].Id)
	req.Equal(int64(3), res[1].Id)

	res, err = repo.FindAll(c, listing.WithPagination(3, 10))
	req.NoError(err)
	req.Len(res, 2)

	res, err = repo.FindAll(c, listing.WithPagination(10, 10))
	req.NoError(err)
	req.Empty(res)
}

func TestReadsOutsideTransactionSeeCommittedState(t *testing.T) {
	req := require.New(t)
	s := NewStore()
	outer := ctx.Background()
	repo := s.Listings()

	req.NoError(repo.Insert(outer, &listing.Listing{Id: 1, Price: domain.NewAmount(1), Active: true}))

	boom := errors.New("boom")
	err := s.RunWithTransaction(outer, func(c ctx.Ctx) error {
		active := false
		req.NoError(repo.Patch(c, 1, &listing.PatchableListing{Active: &active}))

		inside, err := repo.FindOne(c, 1)
		req.NoError(err)
		req.False(inside.Active)

		outside, err := repo.FindOne(outer, 1)
		req.NoError(err)
		req.True(outside.Active)

		all, err := repo.FindAll(outer, listing.WithActive(true))
		req.NoError(err)
		req.Len(all, 1)
		return boom
	})
	req.ErrorIs(err, boom)

	err = s.RunWithTransaction(outer, func(c ctx.Ctx) error {
		active := false
		return repo.Patch(c, 1, &listing.PatchableListing{Active: &active})
	})
	req.NoError(err)

	l, err := repo.FindOne(outer, 1)
	req.NoError(err)
	req.False(l.Active)
}
