package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/domain"
)

type authHandler struct {
	auth domain.AuthUsecase
}

func New(e *echo.Echo, auth domain.AuthUsecase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
	g.GET("/signingMsgTemplate", handler.getSigningMsgTemplate)
}

func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address   domain.Address `json:"address" validate:"required,address"`
		Signature string         `json:"signature" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if tkn, err := h.auth.SignToken(ctx, p.Address, p.Signature); err == domain.ErrInvalidSignature {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err.Error())
	} else if err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}

// getSigningMsgTemplate returns the template, %s is replaced by the lowercased address
func (h *authHandler) getSigningMsgTemplate(c echo.Context) error {
	res := struct {
		Msg string `json:"template"`
	}{
		Msg: h.auth.SigningMessage(),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
