package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftmarket/app/internal/bootstrap"
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	bValidator "github.com/x-xyz/nftmarket/base/validator"
	mmiddleware "github.com/x-xyz/nftmarket/middleware"
	auction_delivery "github.com/x-xyz/nftmarket/stores/auction/delivery/http"
	auth_delivery "github.com/x-xyz/nftmarket/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/nftmarket/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/nftmarket/stores/auth/usecase"
	custody_delivery "github.com/x-xyz/nftmarket/stores/custody/delivery/http"
	event_delivery "github.com/x-xyz/nftmarket/stores/event/delivery/http"
	hc_delivery "github.com/x-xyz/nftmarket/stores/healthcheck/delivery/http"
	listing_delivery "github.com/x-xyz/nftmarket/stores/listing/delivery/http"
	pricefeed_delivery "github.com/x-xyz/nftmarket/stores/pricefeed/delivery/http"
	settlement_delivery "github.com/x-xyz/nftmarket/stores/settlement/delivery/http"
)

func main() {
	bootstrap.LoadConfig()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	middL := mmiddleware.InitMiddleware(viper.GetString("http.allowOrigin"))
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	market, err := bootstrap.Build(context)
	if err != nil {
		context.WithField("err", err).Panic("bootstrap.Build failed")
	}
	defer market.Close()

	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: viper.GetString("auth.signatureMsg"),
		TokenTtl:           viper.GetDuration("auth.tokenTtl"),
	})
	authMiddleware := auth_middleware.New(auth, viper.GetStringSlice("admin.addresses"))

	hc_delivery.New(e, market.Health)
	auth_delivery.New(e, auth)
	custody_delivery.New(e, market.Custody, authMiddleware)
	settlement_delivery.New(e, market.Settlement, authMiddleware)
	pricefeed_delivery.New(e, market.PriceFeed, authMiddleware,
		mmiddleware.CacheHttp(market.Cache, viper.GetDuration("http.quoteCacheTtl")))
	event_delivery.New(e, market.Event)
	listing_delivery.New(e, market.Listing, authMiddleware)
	auction_delivery.New(e, market.Auction, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("http.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
