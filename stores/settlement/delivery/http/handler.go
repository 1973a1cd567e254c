package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/settlement"
	authMiddleware "github.com/x-xyz/nftmarket/stores/auth/delivery/http/middleware"
)

type handler struct {
	settlement settlement.UseCase
}

func New(e *echo.Echo, settlement settlement.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{settlement}

	g := e.Group("/fees")

	g.GET("", h.getFeeConfig)

	g.GET("/quote", h.quote)

	g.PUT("/platform-fee", h.setPlatformFee, authMiddleware.Auth())

	g.PUT("/recipient", h.updateFeeRecipient, authMiddleware.Auth())
}

func (h *handler) getFeeConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.settlement.FeeConfig(ctx); err != nil {
		ctx.WithField("err", err).Error("settlement.FeeConfig failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// quote returns the platform fee charged on amount
func (h *handler) quote(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	amount, err := domain.ParseAmount(c.QueryParam("amount"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if fee, err := h.settlement.PlatformFee(ctx, amount); err != nil {
		ctx.WithField("err", err).Error("settlement.PlatformFee failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, fee)
	}
}

func (h *handler) setPlatformFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		BasisPoints int64 `json:"basisPoints"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.settlement.SetPlatformFee(ctx, address, p.BasisPoints); err != nil {
		ctx.WithField("err", err).Error("settlement.SetPlatformFee failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) updateFeeRecipient(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Recipient domain.Address `json:"recipient"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.settlement.UpdateFeeRecipient(ctx, address, p.Recipient); err != nil {
		ctx.WithField("err", err).Error("settlement.UpdateFeeRecipient failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
