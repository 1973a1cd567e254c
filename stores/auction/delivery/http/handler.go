package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/auction"
	"github.com/x-xyz/nftmarket/domain/settlement"
	authMiddleware "github.com/x-xyz/nftmarket/stores/auth/delivery/http/middleware"
)

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, auction auction.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{auction}

	g := e.Group("/auctions")

	g.GET("", h.findAll)

	g.GET("/:id", h.findOne)

	g.GET("/:id/pending-returns", h.getPendingReturns)

	g.GET("/:id/pending-returns/:bidder", h.getPendingReturn)

	g.POST("", h.create, authMiddleware.Auth())

	g.POST("/:id/bids", h.placeBid, authMiddleware.Auth())

	g.POST("/:id/withdraw", h.withdrawBid, authMiddleware.Auth())

	// anyone may finalize once the deadline passed
	g.POST("/:id/end", h.endAuction, authMiddleware.OptionalAuth())
}

func parseId(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Offset        int            `query:"offset"`
		Limit         int            `query:"limit"`
		Seller        domain.Address `query:"seller"`
		HighestBidder domain.Address `query:"highestBidder"`
		Active        *bool          `query:"active"`
	}

	p := &params{Limit: 50}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	opts := []auction.FindAllOptionsFunc{auction.WithPagination(p.Offset, p.Limit)}
	if len(p.Seller) > 0 {
		opts = append(opts, auction.WithSeller(p.Seller))
	}
	if len(p.HighestBidder) > 0 {
		opts = append(opts, auction.WithHighestBidder(p.HighestBidder))
	}
	if p.Active != nil {
		opts = append(opts, auction.WithActive(*p.Active))
	}

	if res, err := h.auction.FindAll(ctx, opts...); err != nil {
		ctx.WithFields(log.Fields{"err": err, "params": p}).Error("auction.FindAll failed")
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

	if res, err := h.auction.FindOne(ctx, id); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("auction.FindOne failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getPendingReturns(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if res, err := h.auction.PendingReturns(ctx, id); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("auction.PendingReturns failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getPendingReturn(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	bidder := domain.Address(c.Param("bidder"))
	currency := domain.ParseCurrency(c.QueryParam("currency"))

	if res, err := h.auction.PendingReturn(ctx, id, bidder, currency); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id, "bidder": bidder}).Error("auction.PendingReturn failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Contract      domain.Address `json:"contract" validate:"required,address"`
		TokenId       domain.TokenId `json:"tokenId" validate:"required"`
		StartPrice    domain.Amount  `json:"startPrice"`
		DurationHours int64          `json:"durationHours"`
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

	if res, err := h.auction.Create(ctx, address, asset, p.StartPrice, p.DurationHours); err != nil {
		ctx.WithFields(log.Fields{"err": err, "asset": asset}).Error("auction.Create failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) placeBid(c echo.Context) error {
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

	if err := h.auction.PlaceBid(ctx, address, id, *p); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("auction.PlaceBid failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) withdrawBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	type params struct {
		Currency domain.Currency `json:"currency"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if res, err := h.auction.WithdrawBid(ctx, address, id, p.Currency); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("auction.WithdrawBid failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.auction.EndAuction(ctx, id); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("auction.EndAuction failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
