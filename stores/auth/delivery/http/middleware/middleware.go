package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/domain"
)

// AuthMiddleware resolves the caller of a request from its bearer token and
// stores it as a domain.Address under "address"
type AuthMiddleware struct {
	auth   domain.AuthUsecase
	admins map[domain.Address]bool
}

func New(auth domain.AuthUsecase, adminAddresses []string) *AuthMiddleware {
	admins := make(map[domain.Address]bool, len(adminAddresses))
	for _, a := range adminAddresses {
		admins[domain.Address(a).ToLower()] = true
	}
	return &AuthMiddleware{
		auth:   auth,
		admins: admins,
	}
}

// Auth rejects requests without a valid token
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.resolveCaller)
}

// OptionalAuth resolves the caller when a token is sent and lets anonymous requests through
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Header.Get(echo.HeaderAuthorization) == ""
		},
		Validator: m.resolveCaller,
	})
}

// IsAdmin must run after Auth
func (m *AuthMiddleware) IsAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if address, ok := c.Get("address").(domain.Address); ok && m.admins[address.ToLower()] {
				return next(c)
			}
			return delivery.MakeJsonResp(c, http.StatusForbidden, domain.ErrNotAdmin)
		}
	}
}

func (m *AuthMiddleware) resolveCaller(token string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	address, err := m.auth.ParseToken(ctx, token)
	if err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, err
	}
	c.Set("address", domain.Address(address).ToLower())
	return true, nil
}
