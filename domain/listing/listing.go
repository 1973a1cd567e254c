package listing

import (
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/settlement"
)

// Listing is a fixed-price sale offer for one asset. Price is in reference units.
type Listing struct {
	Id          int64          `json:"id" bson:"id"`
	NftContract domain.Address `json:"nftContract" bson:"nftContract"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller      domain.Address `json:"seller" bson:"seller"`
	Price       domain.Amount  `json:"price" bson:"price"`
	Active      bool           `json:"active" bson:"active"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (l *Listing) Asset() domain.AssetId {
	return domain.AssetId{Contract: l.NftContract, TokenId: l.TokenId}
}

type PatchableListing struct {
	Price     *domain.Amount `bson:"price,omitempty"`
	Active    *bool          `bson:"active,omitempty"`
	UpdatedAt *time.Time     `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	Offset      *int
	Limit       *int
	Seller      *domain.Address
	NftContract *domain.Address
	TokenId     *domain.TokenId
	Active      *bool
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

type Repo interface {
	Insert(c ctx.Ctx, listing *Listing) error
	FindOne(c ctx.Ctx, id int64) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Patch(c ctx.Ctx, id int64, patchable *PatchableListing) error
}

type UseCase interface {
	List(c ctx.Ctx, caller domain.Address, asset domain.AssetId, price domain.Amount) (*Listing, error)
	Delist(c ctx.Ctx, caller domain.Address, id int64) error
	UpdatePrice(c ctx.Ctx, caller domain.Address, id int64, price domain.Amount) error
	Buy(c ctx.Ctx, caller domain.Address, id int64, payment settlement.Payment) error

	// RequiredAmount quotes what Buy would require in currency right now
	RequiredAmount(c ctx.Ctx, id int64, currency domain.Currency) (domain.Amount, error)
	FindOne(c ctx.Ctx, id int64) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
}
