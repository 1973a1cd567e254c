package middleware

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/service/cache"
	"github.com/x-xyz/nftmarket/service/cache/provider"
)

const (
	cacheMiddlewarePfx = "httpCacheMiddleware"
	headerXCache       = "X-Cache"
)

type cachedResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// recorder copies everything the handler writes so it can be cached afterwards
type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

type requestKey struct {
	Path  string
	Query url.Values
}

// cacheKey hashes the path and the query ignoring the order of keys and
// values, so reordered query strings share one entry
func cacheKey(u *url.URL) (string, error) {
	hash, err := hashstructure.Hash(requestKey{Path: u.Path, Query: u.Query()}, hashstructure.FormatV2, &hashstructure.HashOptions{
		SlicesAsSets: true,
	})
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(hash, 36), nil
}

// CacheHttp serves successful GET responses from p for ttl. Only read-only
// routes whose staleness is tolerable should use it, e.g. oracle quotes.
func CacheHttp(p provider.Provider, ttl time.Duration) echo.MiddlewareFunc {
	responses := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   cacheMiddlewarePfx,
		Cache: p,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Get("ctx").(ctx.Ctx)
			key, err := cacheKey(c.Request().URL)
			if err != nil {
				ctx.WithField("err", err).Warn("cacheKey failed")
				return next(c)
			}

			hit := cachedResponse{}
			if err := responses.Get(ctx, key, &hit); err == nil {
				for k, vs := range hit.Header {
					c.Response().Header()[k] = vs
				}
				c.Response().Header().Set(headerXCache, "HIT")
				return c.Blob(hit.Status, hit.Header.Get(echo.HeaderContentType), hit.Body)
			} else if err != cache.ErrNotFound {
				ctx.WithField("err", err).Warn("responses.Get failed")
			}

			c.Response().Header().Set(headerXCache, "MISS")
			rec := &recorder{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			if rec.status >= 200 && rec.status < 300 {
				header := c.Response().Header().Clone()
				header.Del(headerXCache)
				header.Del(echo.HeaderXRequestID)
				if err := responses.Set(ctx, key, cachedResponse{
					Status: rec.status,
					Header: header,
					Body:   rec.body.Bytes(),
				}); err != nil {
					ctx.WithFields(log.Fields{"err": err, "key": key}).Warn("responses.Set failed")
				}
			}
			return nil
		}
	}
}
