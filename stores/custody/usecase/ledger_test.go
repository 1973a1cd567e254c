package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/service/txn"
	"github.com/x-xyz/nftmarket/stores/memory"
)

const (
	alice  = domain.Address("0xalice")
	bob    = domain.Address("0xbob")
	market = domain.Address("0xmarket")
	token  = domain.Currency("0xtoken")
)

var asset = domain.AssetId{Contract: "0xnft", TokenId: "1"}

func TestAssetLedger(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	l := NewAssetLedger(memory.NewStore().Holdings(), func() time.Time { return time.Unix(0, 0) })

	_, err := l.OwnerOf(c, asset)
	req.ErrorIs(err, domain.ErrNonexistentAsset)

	req.NoError(l.Mint(c, asset, alice))
	req.ErrorIs(l.Mint(c, asset, bob), domain.ErrInvalidAsset)

	owner, err := l.OwnerOf(c, asset)
	req.NoError(err)
	req.Equal(alice, owner)

	ok, err := l.IsApprovedForOperator(c, asset, market)
	req.NoError(err)
	req.False(ok)
	req.ErrorIs(l.Transfer(c, market, asset, alice, bob), domain.ErrNotApproved)
	req.ErrorIs(l.Approve(c, bob, asset, market), domain.ErrNotOwner)

	req.NoError(l.Approve(c, alice, asset, market))
	ok, err = l.IsApprovedForOperator(c, asset, market)
	req.NoError(err)
	req.True(ok)

	req.ErrorIs(l.Transfer(c, market, asset, bob, alice), domain.ErrNotOwner)
	req.NoError(l.Transfer(c, market, asset, alice, bob))

	owner, err = l.OwnerOf(c, asset)
	req.NoError(err)
	req.Equal(bob, owner)

	// the single approval was cleared by the transfer
	ok, err = l.IsApprovedForOperator(c, asset, market)
	req.NoError(err)
	req.False(ok)

	req.NoError(l.SetApprovalForAll(c, bob, asset.Contract, market, true))
	ok, err = l.IsApprovedForOperator(c, asset, market)
	req.NoError(err)
	req.True(ok)

	// owners move their own assets
	req.NoError(l.Transfer(c, bob, asset, bob, alice))
}

func TestFungibleLedger(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	l := NewFungibleLedger(memory.NewStore().Balances())

	req.NoError(l.Mint(c, token, alice, domain.NewAmount(100)))
	req.NoError(l.Mint(c, domain.NativeCurrency, alice, domain.NewAmount(5)))

	req.ErrorIs(l.TransferFrom(c, token, alice, market, domain.NewAmount(10)), domain.ErrInsufficientAllowance)
	req.NoError(l.Approve(c, token, alice, market, domain.NewAmount(300)))
	req.ErrorIs(l.TransferFrom(c, token, alice, market, domain.NewAmount(200)), domain.ErrInsufficientBalance)
	req.NoError(l.TransferFrom(c, token, alice, market, domain.NewAmount(60)))

	balance, err := l.BalanceOf(c, token, alice)
	req.NoError(err)
	req.Equal("40", balance.String())
	balance, err = l.BalanceOf(c, token, market)
	req.NoError(err)
	req.Equal("60", balance.String())
	allowance, err := l.Allowance(c, token, alice, market)
	req.NoError(err)
	req.Equal("240", allowance.String())

	req.ErrorIs(l.Transfer(c, domain.NativeCurrency, alice, bob, domain.NewAmount(6)), domain.ErrInsufficientBalance)
	req.NoError(l.Transfer(c, domain.NativeCurrency, alice, bob, domain.NewAmount(5)))
	balance, err = l.BalanceOf(c, domain.NativeCurrency, bob)
	req.NoError(err)
	req.Equal("5", balance.String())

	// currencies are kept apart
	balance, err = l.BalanceOf(c, token, bob)
	req.NoError(err)
	req.True(balance.IsZero())

	req.NoError(l.Transfer(c, token, alice, alice, domain.NewAmount(40)))
	balance, err = l.BalanceOf(c, token, alice)
	req.NoError(err)
	req.Equal("40", balance.String())
}

func TestUseCaseRunsMutations(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	store := memory.NewStore()
	uc := New(&CustodyUseCaseCfg{
		Assets:    NewAssetLedger(store.Holdings(), nil),
		Fungibles: NewFungibleLedger(store.Balances()),
		Runner:    txn.NewRunner(store),
	})

	req.NoError(uc.MintAsset(c, asset, alice))
	req.NoError(uc.ApproveAsset(c, alice, asset, market))
	req.NoError(uc.SetApprovalForAll(c, alice, asset.Contract, market, true))
	req.NoError(uc.Mint(c, token, alice, domain.NewAmount(10)))
	req.NoError(uc.Approve(c, alice, token, market, domain.NewAmount(10)))

	owner, err := uc.OwnerOf(c, asset)
	req.NoError(err)
	req.Equal(alice, owner)
	allowance, err := uc.Allowance(c, token, alice, market)
	req.NoError(err)
	req.Equal("10", allowance.String())

	req.ErrorIs(uc.Mint(c, token, "", domain.NewAmount(1)), domain.ErrInvalidAddress)
	balance, err := uc.BalanceOf(c, token, alice)
	req.NoError(err)
	req.Equal("10", balance.String())
}
