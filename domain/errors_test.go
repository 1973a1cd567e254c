package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		Desc string
		Err  error
		Kind ErrorKind
	}{
		{"validation", ErrInvalidPrice, KindValidation},
		{"authorization", ErrNotSeller, KindAuthorization},
		{"state", ErrNoPendingReturn, KindState},
		{"engaged asset", ErrAssetEngaged, KindState},
		{"external", ErrNoPriceFeed, KindExternal},
		{"wrapped", xerrors.Errorf("oracle: %w", ErrInvalidFeed), KindExternal},
		{"plain", errors.New("boom"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, c := range cases {
		assert.Equal(t, c.Kind, KindOf(c.Err), c.Desc)
	}
}

func TestWrappedSentinelMatches(t *testing.T) {
	err := xerrors.Errorf("buy: %w", ErrInsufficientAllowance)
	assert.True(t, errors.Is(err, ErrInsufficientAllowance))
	assert.Equal(t, "buy: insufficient allowance", err.Error())
}
