package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "not hex",
			address:    "0xzz9ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: false,
		},
		{
			desc:       "valid address - real address",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestAddressTag() {
	type Seller string
	type params struct {
		Seller Seller `validate:"required,address"`
	}

	v := NewCustomValidator(validator.New())
	s.NoError(v.Validate(&params{Seller: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"}))
	s.Error(v.Validate(&params{Seller: "0x1234"}))
	s.Error(v.Validate(&params{}))
}
