package healthcheck

import (
	"errors"
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
)

// ErrDisabled is returned by a probe whose backend is not configured
var ErrDisabled = errors.New("backend disabled")

type Status string

const (
	StatusOK       Status = "ok"
	StatusDown     Status = "down"
	StatusDisabled Status = "disabled"
)

// Report is the state of every backend the marketplace depends on
type Report struct {
	Healthy   bool      `json:"healthy"`
	Storage   Status    `json:"storage"`
	Cache     Status    `json:"cache"`
	CheckedAt time.Time `json:"checkedAt"`
}

type HealthCheckUsecase interface {
	Check(c ctx.Ctx) *Report
}

type HealthCheckRepo interface {
	PingDB(c ctx.Ctx) error
	PingCache(c ctx.Ctx) error
}
