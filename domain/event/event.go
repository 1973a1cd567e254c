package event

import (
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

type Type string

const (
	TypeListed         Type = "Listed"
	TypeDelisted       Type = "Delisted"
	TypePriceUpdated   Type = "PriceUpdated"
	TypeSold           Type = "Sold"
	TypeAuctionCreated Type = "AuctionCreated"
	TypeBidPlaced      Type = "BidPlaced"
	TypeAuctionEnded   Type = "AuctionEnded"
)

// Event is one observable marketplace output. Only the fields of its type are set.
type Event struct {
	Id        string `json:"id" bson:"id"`
	Seq       int64  `json:"seq" bson:"seq"`
	Type      Type   `json:"type" bson:"type"`
	ListingId int64  `json:"listingId,omitempty" bson:"listingId,omitempty"`
	AuctionId int64  `json:"auctionId,omitempty" bson:"auctionId,omitempty"`

	Seller   domain.Address   `json:"seller,omitempty" bson:"seller,omitempty"`
	Buyer    domain.Address   `json:"buyer,omitempty" bson:"buyer,omitempty"`
	Bidder   domain.Address   `json:"bidder,omitempty" bson:"bidder,omitempty"`
	Winner   domain.Address   `json:"winner,omitempty" bson:"winner,omitempty"`
	Asset    *domain.AssetId  `json:"asset,omitempty" bson:"asset,omitempty"`
	Price    *domain.Amount   `json:"price,omitempty" bson:"price,omitempty"`
	Currency *domain.Currency `json:"currency,omitempty" bson:"currency,omitempty"`
	Amount   *domain.Amount   `json:"amount,omitempty" bson:"amount,omitempty"`

	NormalizedAmount *domain.Value `json:"normalizedAmount,omitempty" bson:"normalizedAmount,omitempty"`
	EndTime          *time.Time    `json:"endTime,omitempty" bson:"endTime,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func Listed(id int64, seller domain.Address, asset domain.AssetId, price domain.Amount) *Event {
	return &Event{Type: TypeListed, ListingId: id, Seller: seller, Asset: &asset, Price: &price}
}

func Delisted(id int64) *Event {
	return &Event{Type: TypeDelisted, ListingId: id}
}

func PriceUpdated(id int64, price domain.Amount) *Event {
	return &Event{Type: TypePriceUpdated, ListingId: id, Price: &price}
}

func Sold(id int64, buyer, seller domain.Address, currency domain.Currency, amount domain.Amount) *Event {
	return &Event{Type: TypeSold, ListingId: id, Buyer: buyer, Seller: seller, Currency: &currency, Amount: &amount}
}

func AuctionCreated(id int64, seller domain.Address, asset domain.AssetId, startPrice domain.Amount, endTime time.Time) *Event {
	return &Event{Type: TypeAuctionCreated, AuctionId: id, Seller: seller, Asset: &asset, Price: &startPrice, EndTime: &endTime}
}

func BidPlaced(id int64, bidder domain.Address, currency domain.Currency, normalized domain.Value) *Event {
	return &Event{Type: TypeBidPlaced, AuctionId: id, Bidder: bidder, Currency: &currency, NormalizedAmount: &normalized}
}

// AuctionEnded with an empty winner reports an auction that closed without bids
func AuctionEnded(id int64, winner domain.Address, currency *domain.Currency, amount domain.Amount) *Event {
	return &Event{Type: TypeAuctionEnded, AuctionId: id, Winner: winner, Currency: currency, Amount: &amount}
}

type FindAllOptions struct {
	AfterSeq  *int64
	Limit     *int
	Type      *Type
	ListingId *int64
	AuctionId *int64
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

func WithAfterSeq(seq int64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.AfterSeq = &seq
		return nil
	}
}

func WithLimit(limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Limit = &limit
		return nil
	}
}

func WithType(t Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &t
		return nil
	}
}

func WithListingId(id int64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ListingId = &id
		return nil
	}
}

func WithAuctionId(id int64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.AuctionId = &id
		return nil
	}
}

type Repo interface {
	Insert(c ctx.Ctx, event *Event) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
}

// Publisher fans committed events out to subscribers
type Publisher interface {
	Publish(c ctx.Ctx, event *Event) error
}

type UseCase interface {
	// Emit records event as part of the running call; it is published once the call commits
	Emit(c ctx.Ctx, event *Event) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
}
