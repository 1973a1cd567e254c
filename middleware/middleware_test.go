package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftmarket/base/ctx"
)

func TestAddContext(t *testing.T) {
	req := require.New(t)
	m := InitMiddleware("")
	e := echo.New()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(r, rec)

	var got ctx.Ctx
	h := m.CORS(m.AddContext()(func(c echo.Context) error {
		got = c.Get("ctx").(ctx.Ctx)
		return nil
	}))
	req.NoError(h(c))
	req.Equal("req-1", got.Value("requestID"))
	req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	req.Equal("req-1", rec.Header().Get(echo.HeaderXRequestID))
}

func TestIsValidAddress(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("owner")
	c.SetParamValues("not-an-address")
	req.NoError(IsValidAddress("owner")(ok)(c))
	req.Equal(http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("owner")
	c.SetParamValues("0x0000000000000000000000000000000000000001")
	req.NoError(IsValidAddress("owner")(ok)(c))
	req.Equal(http.StatusOK, rec.Code)
}
