package domain

import (
	"fmt"
	"math/big"
	"strings"
)

var Big10 = big.NewInt(10)

type ChainId int32

type Address string

// EmptyAddress is the null identity
const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

// IsEmpty reports whether a is unset or the null identity
func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// AssetId identifies one non-fungible asset
type AssetId struct {
	Contract Address `json:"contract" bson:"contract"`
	TokenId  TokenId `json:"tokenId" bson:"tokenId"`
}

func (id AssetId) ToLower() AssetId {
	return AssetId{Contract: id.Contract.ToLower(), TokenId: id.TokenId}
}

func (id AssetId) String() string {
	return fmt.Sprintf("%s/%s", id.Contract.ToLower(), id.TokenId)
}
