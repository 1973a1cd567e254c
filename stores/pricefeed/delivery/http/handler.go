package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/pricefeed"
	authMiddleware "github.com/x-xyz/nftmarket/stores/auth/delivery/http/middleware"
)

type handler struct {
	pricefeed pricefeed.UseCase
}

// New registers the price feed routes, quoteMiddlewares wrap the latest price route only
func New(e *echo.Echo, pricefeed pricefeed.UseCase, authMiddleware *authMiddleware.AuthMiddleware, quoteMiddlewares ...echo.MiddlewareFunc) {
	h := &handler{pricefeed}

	g := e.Group("/price-feeds")

	g.GET("", h.findAll)

	g.GET("/:currency/price", h.getLatestPrice, quoteMiddlewares...)

	g.GET("/:currency/required-amount", h.getRequiredAmount)

	g.PUT("/:currency", h.setPriceFeed, authMiddleware.Auth())

	g.DELETE("/:currency", h.removePriceFeed, authMiddleware.Auth())
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.pricefeed.FindAll(ctx); err != nil {
		ctx.WithField("err", err).Error("pricefeed.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getLatestPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	currency := domain.ParseCurrency(c.Param("currency"))

	if res, err := h.pricefeed.GetLatestPrice(ctx, currency); err != nil {
		ctx.WithField("err", err).Error("pricefeed.GetLatestPrice failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getRequiredAmount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	currency := domain.ParseCurrency(c.Param("currency"))

	price, err := domain.ParseAmount(c.QueryParam("price"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if res, err := h.pricefeed.RequiredAmount(ctx, price, currency); err != nil {
		ctx.WithField("err", err).Error("pricefeed.RequiredAmount failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) setPriceFeed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Feed domain.Address `json:"feed"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	currency := domain.ParseCurrency(c.Param("currency"))

	if err := h.pricefeed.SetPriceFeed(ctx, address, currency, p.Feed); err != nil {
		ctx.WithField("err", err).Error("pricefeed.SetPriceFeed failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) removePriceFeed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	currency := domain.ParseCurrency(c.Param("currency"))

	if err := h.pricefeed.RemovePriceFeed(ctx, address, currency); err != nil {
		ctx.WithField("err", err).Error("pricefeed.RemovePriceFeed failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
