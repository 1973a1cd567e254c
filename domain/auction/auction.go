package auction

import (
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/settlement"
)

// Auction is a time-bounded bidding process for one asset.
// HighestBidValue is the normalized value of the highest bid when it was accepted.
type Auction struct {
	Id                 int64           `json:"id" bson:"id"`
	NftContract        domain.Address  `json:"nftContract" bson:"nftContract"`
	TokenId            domain.TokenId  `json:"tokenId" bson:"tokenId"`
	Seller             domain.Address  `json:"seller" bson:"seller"`
	StartPrice         domain.Amount   `json:"startPrice" bson:"startPrice"`
	EndTime            time.Time       `json:"endTime" bson:"endTime"`
	HighestBidder      domain.Address  `json:"highestBidder" bson:"highestBidder"`
	HighestBidAmount   domain.Amount   `json:"highestBidAmount" bson:"highestBidAmount"`
	HighestBidCurrency domain.Currency `json:"highestBidCurrency" bson:"highestBidCurrency"`
	HighestBidValue    domain.Value    `json:"highestBidValue" bson:"highestBidValue"`
	Active             bool            `json:"active" bson:"active"`
	CreatedAt          time.Time       `json:"createdAt" bson:"createdAt"`
}

func (a *Auction) Asset() domain.AssetId {
	return domain.AssetId{Contract: a.NftContract, TokenId: a.TokenId}
}

func (a *Auction) HasBid() bool {
	return !a.HighestBidder.IsEmpty()
}

// Floor is the value the next bid has to exceed
func (a *Auction) Floor() domain.Value {
	if a.HasBid() {
		return a.HighestBidValue
	}
	return domain.NewValue(a.StartPrice.Decimal())
}

type PatchableAuction struct {
	HighestBidder      *domain.Address  `bson:"highestBidder,omitempty"`
	HighestBidAmount   *domain.Amount   `bson:"highestBidAmount,omitempty"`
	HighestBidCurrency *domain.Currency `bson:"highestBidCurrency,omitempty"`
	HighestBidValue    *domain.Value    `bson:"highestBidValue,omitempty"`
	Active             *bool            `bson:"active,omitempty"`
}

type EscrowKey struct {
	AuctionId int64           `json:"auctionId" bson:"auctionId"`
	Bidder    domain.Address  `json:"bidder" bson:"bidder"`
	Currency  domain.Currency `json:"currency" bson:"currency"`
}

func (k EscrowKey) ToLower() EscrowKey {
	return EscrowKey{AuctionId: k.AuctionId, Bidder: k.Bidder.ToLower(), Currency: k.Currency.Normalize()}
}

// EscrowEntry is a refundable balance owed to an outbid bidder
type EscrowEntry struct {
	EscrowKey        `bson:",inline"`
	RefundableAmount domain.Amount `json:"refundableAmount" bson:"refundableAmount"`
	UpdatedAt        time.Time     `json:"updatedAt" bson:"updatedAt"`
}

type FindAllOptions struct {
	Offset        *int
	Limit         *int
	Seller        *domain.Address
	HighestBidder *domain.Address
	NftContract   *domain.Address
	TokenId       *domain.TokenId
	Active        *bool
	EndedBefore   *time.Time
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithPagination(offset, limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		seller = seller.ToLower()
		options.Seller = &seller
		return nil
	}
}

func WithHighestBidder(bidder domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		bidder = bidder.ToLower()
		options.HighestBidder = &bidder
		return nil
	}
}

func WithAsset(asset domain.AssetId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		contract := asset.Contract.ToLower()
		options.NftContract = &contract
		if len(asset.TokenId) > 0 {
			tokenId := asset.TokenId
			options.TokenId = &tokenId
		}
		return nil
	}
}

func WithActive(active bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Active = &active
		return nil
	}
}

// WithEndedBefore selects auctions whose endTime <= t
func WithEndedBefore(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndedBefore = &t
		return nil
	}
}

type Repo interface {
	Insert(c ctx.Ctx, auction *Auction) error
	FindOne(c ctx.Ctx, id int64) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	Patch(c ctx.Ctx, id int64, patchable *PatchableAuction) error
}

type EscrowRepo interface {
	// FindOne returns nil, nil when nothing was ever escrowed for key
	FindOne(c ctx.Ctx, key EscrowKey) (*EscrowEntry, error)
	FindAll(c ctx.Ctx, auctionId int64) ([]*EscrowEntry, error)
	Upsert(c ctx.Ctx, entry *EscrowEntry) error
}

type UseCase interface {
	Create(c ctx.Ctx, caller domain.Address, asset domain.AssetId, startPrice domain.Amount, durationHours int64) (*Auction, error)
	PlaceBid(c ctx.Ctx, caller domain.Address, id int64, payment settlement.Payment) error
	WithdrawBid(c ctx.Ctx, caller domain.Address, id int64, currency domain.Currency) (domain.Amount, error)
	EndAuction(c ctx.Ctx, id int64) error

	FindOne(c ctx.Ctx, id int64) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	PendingReturn(c ctx.Ctx, id int64, bidder domain.Address, currency domain.Currency) (domain.Amount, error)
	PendingReturns(c ctx.Ctx, id int64) ([]*EscrowEntry, error)
}
