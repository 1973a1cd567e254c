package domain

import "encoding/json"

// Currency is either the native settlement currency or a fungible token.
// The native currency is represented by the null identity.
type Currency Address

const NativeCurrency = Currency(EmptyAddress)

func TokenCurrency(token Address) Currency {
	return Currency(token.ToLower())
}

func (c Currency) IsNative() bool {
	return Address(c).IsEmpty()
}

// Normalize maps every spelling of the native sentinel onto NativeCurrency
func (c Currency) Normalize() Currency {
	if c.IsNative() {
		return NativeCurrency
	}
	return Currency(Address(c).ToLower())
}

func (c Currency) Token() Address {
	return Address(c).ToLower()
}

func (c Currency) Equals(o Currency) bool {
	return c.Normalize() == o.Normalize()
}

func (c Currency) String() string {
	if c.IsNative() {
		return "native"
	}
	return string(c.Token())
}

// ParseCurrency accepts "native" or a token address
func ParseCurrency(s string) Currency {
	if s == "native" {
		return NativeCurrency
	}
	return TokenCurrency(Address(s)).Normalize()
}

func (c *Currency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = ParseCurrency(s)
	return nil
}
