package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/custody"
	authMiddleware "github.com/x-xyz/nftmarket/stores/auth/delivery/http/middleware"
)

type handler struct {
	custody custody.UseCase
}

func New(e *echo.Echo, custody custody.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{custody}

	g := e.Group("/custody")

	g.GET("/assets/:contract/:tokenId/owner", h.ownerOf)

	g.GET("/balances/:currency/:holder", h.balanceOf)

	g.GET("/allowances/:currency/:owner/:spender", h.allowance)

	g.POST("/assets/mint", h.mintAsset, authMiddleware.Auth(), authMiddleware.IsAdmin())

	g.POST("/assets/approve", h.approveAsset, authMiddleware.Auth())

	g.POST("/operators", h.setApprovalForAll, authMiddleware.Auth())

	g.POST("/mint", h.mint, authMiddleware.Auth(), authMiddleware.IsAdmin())

	g.POST("/approve", h.approve, authMiddleware.Auth())
}

func (h *handler) ownerOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	asset := domain.AssetId{
		Contract: domain.Address(c.Param("contract")).ToLower(),
		TokenId:  domain.TokenId(c.Param("tokenId")),
	}

	if owner, err := h.custody.OwnerOf(ctx, asset); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, owner)
	}
}

func (h *handler) balanceOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	currency := domain.ParseCurrency(c.Param("currency"))
	holder := domain.Address(c.Param("holder"))

	if res, err := h.custody.BalanceOf(ctx, currency, holder); err != nil {
		ctx.WithField("err", err).Error("custody.BalanceOf failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) allowance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	currency := domain.ParseCurrency(c.Param("currency"))
	owner := domain.Address(c.Param("owner"))
	spender := domain.Address(c.Param("spender"))

	if res, err := h.custody.Allowance(ctx, currency, owner, spender); err != nil {
		ctx.WithField("err", err).Error("custody.Allowance failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) mintAsset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Contract domain.Address `json:"contract"`
		TokenId  domain.TokenId `json:"tokenId"`
		Owner    domain.Address `json:"owner"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	asset := domain.AssetId{Contract: p.Contract, TokenId: p.TokenId}
	if err := h.custody.MintAsset(ctx, asset, p.Owner); err != nil {
		ctx.WithField("err", err).Error("custody.MintAsset failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) approveAsset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Contract domain.Address `json:"contract"`
		TokenId  domain.TokenId `json:"tokenId"`
		Operator domain.Address `json:"operator"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	asset := domain.AssetId{Contract: p.Contract, TokenId: p.TokenId}
	if err := h.custody.ApproveAsset(ctx, address, asset, p.Operator); err != nil {
		ctx.WithField("err", err).Error("custody.ApproveAsset failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) setApprovalForAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Contract domain.Address `json:"contract"`
		Operator domain.Address `json:"operator"`
		Approved bool           `json:"approved"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.custody.SetApprovalForAll(ctx, address, p.Contract, p.Operator, p.Approved); err != nil {
		ctx.WithField("err", err).Error("custody.SetApprovalForAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Currency domain.Currency `json:"currency"`
		Holder   domain.Address  `json:"holder"`
		Amount   domain.Amount   `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.custody.Mint(ctx, p.Currency, p.Holder, p.Amount); err != nil {
		ctx.WithField("err", err).Error("custody.Mint failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Currency domain.Currency `json:"currency"`
		Spender  domain.Address  `json:"spender"`
		Amount   domain.Amount   `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.custody.Approve(ctx, address, p.Currency, p.Spender, p.Amount); err != nil {
		ctx.WithField("err", err).Error("custody.Approve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
