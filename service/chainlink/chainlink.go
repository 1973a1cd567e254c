package chainlink

import (
	"math/big"
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

// Quote is one round of an aggregator feed
type Quote struct {
	RoundId   *big.Int
	Answer    *big.Int
	Decimals  int32
	UpdatedAt time.Time
	// Valid is false for an incomplete or carried-over round
	Valid bool
}

type Chainlink interface {
	LatestRoundData(c ctx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (*Quote, error)
	Decimals(c ctx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (int32, error)
}
