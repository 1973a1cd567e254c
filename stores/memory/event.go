package memory

import (
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain/event"
)

const defaultEventLimit = 100

type eventRepo struct {
	s *Store
}

func (s *Store) Events() event.Repo {
	return &eventRepo{s}
}

// Insert appends e, events are inserted in seq order
func (r *eventRepo) Insert(c ctx.Ctx, e *event.Event) error {
	r.s.write(func(t *tables) {
		t.events = append(t.events, *e)
	})
	return nil
}

func (r *eventRepo) FindAll(c ctx.Ctx, optFns ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	opts, err := event.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	limit := defaultEventLimit
	if opts.Limit != nil && *opts.Limit > 0 {
		limit = *opts.Limit
	}

	res := []*event.Event{}
	r.s.read(c, func(t *tables) {
		for _, e := range t.events {
			if len(res) >= limit {
				return
			}
			if opts.AfterSeq != nil && e.Seq <= *opts.AfterSeq {
				continue
			}
			if opts.Type != nil && e.Type != *opts.Type {
				continue
			}
			if opts.ListingId != nil && e.ListingId != *opts.ListingId {
				continue
			}
			if opts.AuctionId != nil && e.AuctionId != *opts.AuctionId {
				continue
			}
			e := e
			res = append(res, &e)
		}
	})
	return res, nil
}
