package memory

import (
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain/settlement"
)

type feeConfigRepo struct {
	s *Store
}

func (s *Store) FeeConfigs() settlement.Repo {
	return &feeConfigRepo{s}
}

func (r *feeConfigRepo) FindOne(c ctx.Ctx) (*settlement.FeeConfig, error) {
	var res *settlement.FeeConfig
	r.s.read(c, func(t *tables) {
		if t.fee != nil {
			fee := *t.fee
			res = &fee
		}
	})
	return res, nil
}

func (r *feeConfigRepo) Upsert(c ctx.Ctx, config *settlement.FeeConfig) error {
	r.s.write(func(t *tables) {
		fee := *config
		fee.FeeRecipient = fee.FeeRecipient.ToLower()
		t.fee = &fee
	})
	return nil
}
