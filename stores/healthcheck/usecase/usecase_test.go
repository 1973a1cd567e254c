package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftmarket/base/ctx"
	hcdomain "github.com/x-xyz/nftmarket/domain/healthcheck"
	"github.com/x-xyz/nftmarket/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	req := require.New(t)
	repo := mocks.NewHealthCheckRepo(t)
	repo.On("PingDB", mock.Anything).Return(nil).Twice()
	repo.On("PingCache", mock.Anything).Return(nil).Once()
	repo.On("PingCache", mock.Anything).Return(errors.New("redis down")).Once()

	im := New(repo)

	r := im.Check(ctx.Background())
	req.True(r.Healthy)
	req.Equal(hcdomain.StatusOK, r.Storage)
	req.Equal(hcdomain.StatusOK, r.Cache)

	r = im.Check(ctx.Background())
	req.False(r.Healthy)
	req.Equal(hcdomain.StatusDown, r.Cache)
}

func TestCheckDisabledBackends(t *testing.T) {
	req := require.New(t)
	repo := mocks.NewHealthCheckRepo(t)
	repo.On("PingDB", mock.Anything).Return(hcdomain.ErrDisabled).Once()
	repo.On("PingCache", mock.Anything).Return(hcdomain.ErrDisabled).Once()

	r := New(repo).Check(ctx.Background())
	req.True(r.Healthy)
	req.Equal(hcdomain.StatusDisabled, r.Storage)
	req.Equal(hcdomain.StatusDisabled, r.Cache)
}
