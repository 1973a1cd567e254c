package pricefeed

import (
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

// Binding maps a token currency to the oracle feed quoting it
type Binding struct {
	Currency  domain.Currency `json:"currency" bson:"currency"`
	Feed      domain.Address  `json:"feed" bson:"feed"`
	UpdatedBy domain.Address  `json:"updatedBy" bson:"updatedBy"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// Price is a validated oracle quote for one currency
type Price struct {
	Currency  domain.Currency `json:"currency"`
	Feed      domain.Address  `json:"feed"`
	Answer    domain.Amount   `json:"answer"`
	Decimals  int32           `json:"decimals"`
	Value     domain.Value    `json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type Repo interface {
	// FindOne returns nil, nil when currency has no binding
	FindOne(c ctx.Ctx, currency domain.Currency) (*Binding, error)
	FindAll(c ctx.Ctx) ([]*Binding, error)
	Upsert(c ctx.Ctx, binding *Binding) error
	Remove(c ctx.Ctx, currency domain.Currency) error
}

type UseCase interface {
	// RequiredAmount converts a reference price into an amount of currency, rounding toward zero
	RequiredAmount(c ctx.Ctx, referencePrice domain.Amount, currency domain.Currency) (domain.Amount, error)
	// NormalizedValue expresses amount of currency in reference units
	NormalizedValue(c ctx.Ctx, amount domain.Amount, currency domain.Currency) (domain.Value, error)

	GetLatestPrice(c ctx.Ctx, currency domain.Currency) (*Price, error)
	SetPriceFeed(c ctx.Ctx, caller domain.Address, currency domain.Currency, feed domain.Address) error
	RemovePriceFeed(c ctx.Ctx, caller domain.Address, currency domain.Currency) error
	FindAll(c ctx.Ctx) ([]*Binding, error)
}
