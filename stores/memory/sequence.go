package memory

import (
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

type sequenceRepo struct {
	s *Store
}

func (s *Store) Sequence() domain.SequenceRepo {
	return &sequenceRepo{s}
}

func (r *sequenceRepo) Next(c ctx.Ctx, name string) (int64, error) {
	var res int64
	r.s.write(func(t *tables) {
		t.counters[name]++
		res = t.counters[name]
	})
	return res, nil
}
