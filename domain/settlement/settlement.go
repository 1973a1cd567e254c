package settlement

import (
	"math/big"
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

const (
	// MaxFeeBasisPoints caps the platform fee at 10%
	MaxFeeBasisPoints = 1000
	BasisPointsDenom  = 10000
)

var bigBasisPointsDenom = big.NewInt(BasisPointsDenom)

// Payment is what a buyer or bidder offers in one call
type Payment struct {
	Currency     domain.Currency `json:"currency"`
	TokenAmount  domain.Amount   `json:"tokenAmount"`
	NativeAmount domain.Amount   `json:"nativeAmount"`
}

// Amount is the quantity the payment carries in its own currency
func (p Payment) Amount() domain.Amount {
	if p.Currency.IsNative() {
		return p.NativeAmount
	}
	return p.TokenAmount
}

type FeeConfig struct {
	Key          string         `json:"-" bson:"key"`
	BasisPoints  int64          `json:"basisPoints" bson:"basisPoints"`
	FeeRecipient domain.Address `json:"feeRecipient" bson:"feeRecipient"`
	UpdatedAt    time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// Fee returns amount * bps / 10000, truncated
func (f FeeConfig) Fee(amount domain.Amount) domain.Amount {
	return amount.MulDiv(big.NewInt(f.BasisPoints), bigBasisPointsDenom)
}

// Receipt records how one settled amount was split
type Receipt struct {
	Currency       domain.Currency `json:"currency"`
	Amount         domain.Amount   `json:"amount"`
	SellerReceived domain.Amount   `json:"sellerReceived"`
	FeeReceived    domain.Amount   `json:"feeReceived"`
}

type Repo interface {
	// FindOne returns nil, nil when the fee config was never persisted
	FindOne(c ctx.Ctx) (*FeeConfig, error)
	Upsert(c ctx.Ctx, config *FeeConfig) error
}

type UseCase interface {
	FeeConfig(c ctx.Ctx) (*FeeConfig, error)
	PlatformFee(c ctx.Ctx, amount domain.Amount) (domain.Amount, error)
	IsFeeRecipient(c ctx.Ctx, caller domain.Address) (bool, error)
	SetPlatformFee(c ctx.Ctx, caller domain.Address, basisPoints int64) error
	UpdateFeeRecipient(c ctx.Ctx, caller, recipient domain.Address) error

	// CheckPayment validates that payer can fund payment and that it covers required
	CheckPayment(c ctx.Ctx, payer domain.Address, payment Payment, required domain.Amount) error
	// Collect moves the payment into marketplace custody
	Collect(c ctx.Ctx, payer domain.Address, payment Payment) error
	// Payout pays seller amount minus the platform fee and the fee recipient the fee
	Payout(c ctx.Ctx, currency domain.Currency, amount domain.Amount, seller domain.Address) (*Receipt, error)
	// Refund returns escrowed value from marketplace custody
	Refund(c ctx.Ctx, currency domain.Currency, amount domain.Amount, to domain.Address) error
}
