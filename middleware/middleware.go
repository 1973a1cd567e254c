package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/base/metrics"
	"github.com/x-xyz/nftmarket/base/validator"
	"github.com/x-xyz/nftmarket/domain"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	allowOrigin string
}

// InitMiddleware initialize the middleware, an empty allowOrigin allows every origin
func InitMiddleware(allowOrigin string) *GoMiddleware {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return &GoMiddleware{allowOrigin: allowOrigin}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", m.allowOrigin)
		return next(c)
	}
}

// AddContext adds the request scoped ctx into echo, tagged with the request id
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			cont := ctx.WithValue(ctx.Background(), "requestID", requestID)
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"route":      c.Path(),
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"referer":    req.Header.Get("Referer"),
			}
			if address, ok := c.Get("address").(domain.Address); ok {
				fields["caller"] = address.ToLowerStr()
			}

			if res.Status >= 400 {
				fields["nextErr"] = err
			}

			if cont, ok := c.Get("ctx").(ctx.Ctx); ok {
				cont.WithFields(fields).Info("response")
			} else {
				log.Log().WithFields(fields).Info("response")
			}
			return nil
		}
	}
}

// IsValidAddress rejects requests whose path param is not an address
func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
			}
			return next(c)
		}
	}
}
