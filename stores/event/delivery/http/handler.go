package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/domain/event"
)

type handler struct {
	event event.UseCase
}

func New(e *echo.Echo, event event.UseCase) {
	h := &handler{event}

	e.GET("/events", h.findAll)
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	opts := []event.FindAllOptionsFunc{}

	if s := c.QueryParam("afterSeq"); s != "" {
		seq, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid afterSeq")
		}
		opts = append(opts, event.WithAfterSeq(seq))
	}

	if s := c.QueryParam("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid limit")
		}
		opts = append(opts, event.WithLimit(limit))
	}

	if t := c.QueryParam("type"); t != "" {
		opts = append(opts, event.WithType(event.Type(t)))
	}

	if s := c.QueryParam("listingId"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listingId")
		}
		opts = append(opts, event.WithListingId(id))
	}

	if s := c.QueryParam("auctionId"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid auctionId")
		}
		opts = append(opts, event.WithAuctionId(id))
	}

	if res, err := h.event.FindAll(ctx, opts...); err != nil {
		ctx.WithField("err", err).Error("event.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
