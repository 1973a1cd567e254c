package usecase

import (
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	hcdomain "github.com/x-xyz/nftmarket/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
	now  func() time.Time
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
		now:  time.Now,
	}
}

// Check probes every backend, a disabled backend does not make the report unhealthy
func (im *impl) Check(c ctx.Ctx) *hcdomain.Report {
	r := &hcdomain.Report{
		Storage:   statusOf(c, "storage", im.repo.PingDB(c)),
		Cache:     statusOf(c, "cache", im.repo.PingCache(c)),
		CheckedAt: im.now(),
	}
	r.Healthy = r.Storage != hcdomain.StatusDown && r.Cache != hcdomain.StatusDown
	return r
}

func statusOf(c ctx.Ctx, backend string, err error) hcdomain.Status {
	switch {
	case err == nil:
		return hcdomain.StatusOK
	case err == hcdomain.ErrDisabled:
		return hcdomain.StatusDisabled
	}
	c.WithFields(log.Fields{"err": err, "backend": backend}).Warn("health probe failed")
	return hcdomain.StatusDown
}
