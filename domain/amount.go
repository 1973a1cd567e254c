package domain

import (
	"encoding/json"
	"math/big"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"golang.org/x/xerrors"
)

// Amount is a non-negative integer quantity in a currency's base units.
// It is stored as a decimal string so that it survives bson and json untruncated.
type Amount struct {
	v *big.Int
}

var ZeroAmount = Amount{}

func NewAmount(v int64) Amount {
	return Amount{big.NewInt(v)}
}

func NewAmountFromBig(v *big.Int) Amount {
	if v == nil {
		return Amount{}
	}
	return Amount{new(big.Int).Set(v)}
}

func ParseAmount(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, xerrors.Errorf("invalid amount %q: %w", s, ErrInvalidNumberFormat)
	}
	return Amount{v}, nil
}

func (a Amount) BigInt() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.v)
}

func (a Amount) Sign() int {
	if a.v == nil {
		return 0
	}
	return a.v.Sign()
}

func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

func (a Amount) Cmp(b Amount) int {
	return a.BigInt().Cmp(b.BigInt())
}

func (a Amount) Add(b Amount) Amount {
	return Amount{new(big.Int).Add(a.BigInt(), b.BigInt())}
}

func (a Amount) Sub(b Amount) Amount {
	return Amount{new(big.Int).Sub(a.BigInt(), b.BigInt())}
}

// MulDiv returns a*num/den truncated toward zero
func (a Amount) MulDiv(num, den *big.Int) Amount {
	v := new(big.Int).Mul(a.BigInt(), num)
	return Amount{v.Quo(v, den)}
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(a.BigInt(), 0)
}

func (a Amount) String() string {
	return a.BigInt().String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// plain json numbers are accepted as well
		s = string(data)
	}
	if s == "" || s == "null" {
		*a = Amount{}
		return nil
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(a.String())
}

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Value is an exact decimal expressed in the reference unit of the marketplace
type Value struct {
	decimal.Decimal
}

func NewValue(d decimal.Decimal) Value {
	return Value{d}
}

func (v Value) GreaterThan(o Value) bool {
	return v.Decimal.GreaterThan(o.Decimal)
}

func (v Value) Equal(o Value) bool {
	return v.Decimal.Equal(o.Decimal)
}

func (v Value) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(v.Decimal.String())
}

func (v *Value) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&s); err != nil {
		return err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return xerrors.Errorf("invalid value %q: %w", s, ErrInvalidNumberFormat)
	}
	v.Decimal = d
	return nil
}
