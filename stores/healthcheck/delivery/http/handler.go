package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	hcdomain "github.com/x-xyz/nftmarket/domain/healthcheck"
)

type handler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	h := &handler{us}

	e.GET("/health", h.check)
}

func (h *handler) check(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	r := h.healthCheck.Check(ctx)
	if !r.Healthy {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, r)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, r)
}
