package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/listing"
	"github.com/x-xyz/nftmarket/domain/settlement"
	authMiddleware "github.com/x-xyz/nftmarket/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.UseCase
}

func New(e *echo.Echo, listing listing.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{listing}

	g := e.Group("/listings")

	g.GET("", h.findAll)

	g.GET("/:id", h.findOne)

	g.GET("/:id/required-amount", h.getRequiredAmount)

	g.POST("", h.list, authMiddleware.Auth())

	g.DELETE("/:id", h.delist, authMiddleware.Auth())

	g.PUT("/:id/price", h.updatePrice, authMiddleware.Auth())

	g.POST("/:id/buy", h.buy, authMiddleware.Auth())
}

func parseId(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Offset   int            `query:"offset"`
		Limit    int            `query:"limit"`
		Seller   domain.Address `query:"seller"`
		Contract domain.Address `query:"contract"`
		TokenId  domain.TokenId `query:"tokenId"`
		Active   *bool          `query:"active"`
	}

	p := &params{Limit: 50}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	opts := []listing.FindAllOptionsFunc{listing.WithPagination(p.Offset, p.Limit)}
	if len(p.Seller) > 0 {
		opts = append(opts, listing.WithSeller(p.Seller))
	}
	if len(p.Contract) > 0 {
		opts = append(opts, listing.WithAsset(domain.AssetId{Contract: p.Contract, TokenId: p.TokenId}))
	}
	if p.Active != nil {
		opts = append(opts, listing.WithActive(*p.Active))
	}

	if res, err := h.listing.FindAll(ctx, opts...); err != nil {
		ctx.WithFields(log.Fields{"err": err, "params": p}).Error("listing.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) findOne(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if res, err := h.listing.FindOne(ctx, id); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("listing.FindOne failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getRequiredAmount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	currency := domain.ParseCurrency(c.QueryParam("currency"))

	if res, err := h.listing.RequiredAmount(ctx, id, currency); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id, "currency": currency}).Error("listing.RequiredAmount failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Contract domain.Address `json:"contract" validate:"required,address"`
		TokenId  domain.TokenId `json:"tokenId" validate:"required"`
		Price    domain.Amount  `json:"price"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	asset := domain.AssetId{Contract: p.Contract, TokenId: p.TokenId}

	if res, err := h.listing.List(ctx, address, asset, p.Price); err != nil {
		ctx.WithFields(log.Fields{"err": err, "asset": asset}).Error("listing.List failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) delist(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.listing.Delist(ctx, address, id); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("listing.Delist failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) updatePrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	type params struct {
		Price domain.Amount `json:"price"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.listing.UpdatePrice(ctx, address, id, p.Price); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("listing.UpdatePrice failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	p := &settlement.Payment{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.listing.Buy(ctx, address, id, *p); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("listing.Buy failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
