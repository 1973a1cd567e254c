package custody

import (
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

// Holding is the ownership record of one asset
type Holding struct {
	domain.AssetId `bson:",inline"`
	Owner          domain.Address `json:"owner" bson:"owner"`
	Approved       domain.Address `json:"approved" bson:"approved"`
	UpdatedAt      time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// OperatorApproval lets operator move every asset of owner in contract
type OperatorApproval struct {
	Contract domain.Address `json:"contract" bson:"contract"`
	Owner    domain.Address `json:"owner" bson:"owner"`
	Operator domain.Address `json:"operator" bson:"operator"`
	Approved bool           `json:"approved" bson:"approved"`
}

type Balance struct {
	Currency domain.Currency `json:"currency" bson:"currency"`
	Holder   domain.Address  `json:"holder" bson:"holder"`
	Amount   domain.Amount   `json:"amount" bson:"amount"`
}

type Allowance struct {
	Currency domain.Currency `json:"currency" bson:"currency"`
	Owner    domain.Address  `json:"owner" bson:"owner"`
	Spender  domain.Address  `json:"spender" bson:"spender"`
	Amount   domain.Amount   `json:"amount" bson:"amount"`
}

type HoldingRepo interface {
	// FindOne returns nil, nil for an unknown asset
	FindOne(c ctx.Ctx, asset domain.AssetId) (*Holding, error)
	Upsert(c ctx.Ctx, holding *Holding) error
	FindOperatorApproval(c ctx.Ctx, contract, owner, operator domain.Address) (*OperatorApproval, error)
	UpsertOperatorApproval(c ctx.Ctx, approval *OperatorApproval) error
}

type BalanceRepo interface {
	// FindBalance returns nil, nil when holder never held currency
	FindBalance(c ctx.Ctx, currency domain.Currency, holder domain.Address) (*Balance, error)
	UpsertBalance(c ctx.Ctx, balance *Balance) error
	FindAllowance(c ctx.Ctx, currency domain.Currency, owner, spender domain.Address) (*Allowance, error)
	UpsertAllowance(c ctx.Ctx, allowance *Allowance) error
}

// AssetLedger is the ownership ledger of non-fungible assets
type AssetLedger interface {
	OwnerOf(c ctx.Ctx, asset domain.AssetId) (domain.Address, error)
	IsApprovedForOperator(c ctx.Ctx, asset domain.AssetId, operator domain.Address) (bool, error)
	// Transfer moves asset from -> to on behalf of operator
	Transfer(c ctx.Ctx, operator domain.Address, asset domain.AssetId, from, to domain.Address) error

	Mint(c ctx.Ctx, asset domain.AssetId, owner domain.Address) error
	Approve(c ctx.Ctx, caller domain.Address, asset domain.AssetId, operator domain.Address) error
	SetApprovalForAll(c ctx.Ctx, caller, contract, operator domain.Address, approved bool) error
}

// FungibleLedger keeps balances of the native currency and every token
type FungibleLedger interface {
	BalanceOf(c ctx.Ctx, currency domain.Currency, holder domain.Address) (domain.Amount, error)
	Allowance(c ctx.Ctx, currency domain.Currency, owner, spender domain.Address) (domain.Amount, error)
	// TransferFrom lets spender pull amount out of owner's balance into its own
	TransferFrom(c ctx.Ctx, currency domain.Currency, owner, spender domain.Address, amount domain.Amount) error
	Transfer(c ctx.Ctx, currency domain.Currency, from, to domain.Address, amount domain.Amount) error

	Mint(c ctx.Ctx, currency domain.Currency, holder domain.Address, amount domain.Amount) error
	Approve(c ctx.Ctx, currency domain.Currency, owner, spender domain.Address, amount domain.Amount) error
}

// UseCase serves holders of the ledgers, every mutation runs as one marketplace call
type UseCase interface {
	OwnerOf(c ctx.Ctx, asset domain.AssetId) (domain.Address, error)
	BalanceOf(c ctx.Ctx, currency domain.Currency, holder domain.Address) (domain.Amount, error)
	Allowance(c ctx.Ctx, currency domain.Currency, owner, spender domain.Address) (domain.Amount, error)

	MintAsset(c ctx.Ctx, asset domain.AssetId, owner domain.Address) error
	ApproveAsset(c ctx.Ctx, caller domain.Address, asset domain.AssetId, operator domain.Address) error
	SetApprovalForAll(c ctx.Ctx, caller, contract, operator domain.Address, approved bool) error

	Mint(c ctx.Ctx, currency domain.Currency, holder domain.Address, amount domain.Amount) error
	Approve(c ctx.Ctx, caller domain.Address, currency domain.Currency, spender domain.Address, amount domain.Amount) error
}
