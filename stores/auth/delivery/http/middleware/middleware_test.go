package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/mocks"
)

type authMiddlewareSuite struct {
	suite.Suite

	auth *mocks.AuthUsecase
	m    *AuthMiddleware
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(authMiddlewareSuite))
}

func (s *authMiddlewareSuite) SetupTest() {
	s.auth = mocks.NewAuthUsecase(s.T())
	s.m = New(s.auth, []string{"0xADMIN"})
}

func (s *authMiddlewareSuite) serve(token string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, domain.Address) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())

	var caller domain.Address
	h := func(c echo.Context) error {
		caller, _ = c.Get("address").(domain.Address)
		return c.NoContent(http.StatusNoContent)
	}
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, caller
}

func (s *authMiddlewareSuite) TestAuth() {
	s.auth.On("ParseToken", mock.Anything, "good").Return("0xAlice", nil).Once()
	rec, caller := s.serve("good", s.m.Auth())
	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(domain.Address("0xalice"), caller)

	s.auth.On("ParseToken", mock.Anything, "bad").Return("", errors.New("expired")).Once()
	rec, _ = s.serve("bad", s.m.Auth())
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec, _ = s.serve("", s.m.Auth())
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *authMiddlewareSuite) TestOptionalAuth() {
	rec, caller := s.serve("", s.m.OptionalAuth())
	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(caller)
}

func (s *authMiddlewareSuite) TestIsAdmin() {
	s.auth.On("ParseToken", mock.Anything, "admin").Return("0xadmin", nil).Once()
	rec, _ := s.serve("admin", s.m.Auth(), s.m.IsAdmin())
	s.Equal(http.StatusNoContent, rec.Code)

	s.auth.On("ParseToken", mock.Anything, "alice").Return("0xalice", nil).Once()
	rec, _ = s.serve("alice", s.m.Auth(), s.m.IsAdmin())
	s.Equal(http.StatusForbidden, rec.Code)
}
