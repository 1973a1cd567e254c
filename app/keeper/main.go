// The keeper finalizes auctions whose end time has passed. endAuction is
// permissionless so the keeper holds no identity.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/nftmarket/app/internal/bootstrap"
	"github.com/x-xyz/nftmarket/base/counter"
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/goroutine"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/base/metrics"
	"github.com/x-xyz/nftmarket/domain/auction"
)

const batchSize = 100

var met = metrics.New("keeper")

type keeper struct {
	auction  auction.UseCase
	interval time.Duration
	ended    *counter.Counter
	failed   *counter.Counter
}

// sweep ends every due auction once, a failing auction is logged and left for the next round
func (k *keeper) sweep(c ctx.Ctx) {
	defer met.BumpTime("sweep.time").End()

	now := time.Now()
	// ended auctions leave the active filter, only failures stay ahead of the window
	skip := 0
	for {
		due, err := k.auction.FindAll(c,
			auction.WithActive(true),
			auction.WithEndedBefore(now),
			auction.WithPagination(skip, batchSize),
		)
		if err != nil {
			c.WithField("err", err).Error("auction.FindAll failed")
			return
		}

		for _, a := range due {
			if err := k.auction.EndAuction(c, a.Id); err != nil {
				skip++
				k.failed.Add(1)
				met.BumpSum("endAuction.err", 1)
				c.WithFields(log.Fields{"err": err, "auctionId": a.Id}).Error("auction.EndAuction failed")
				continue
			}
			k.ended.Add(1)
		}

		if len(due) < batchSize {
			return
		}
	}
}

func (k *keeper) run(c ctx.Ctx, done <-chan struct{}) {
	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()
	for {
		k.sweep(c)
		c.WithFields(log.Fields{"ended": k.ended.Swap(), "failed": k.failed.Swap()}).Info("sweep done")

		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}

func main() {
	bootstrap.LoadConfig()

	c := ctx.Background()

	market, err := bootstrap.Build(c)
	if err != nil {
		c.WithField("err", err).Panic("bootstrap.Build failed")
	}
	defer market.Close()

	k := &keeper{
		auction:  market.Auction,
		interval: viper.GetDuration("keeper.interval"),
		ended:    counter.NewCounter(),
		failed:   counter.NewCounter(),
	}

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		goroutine.Supervise(done, func() { k.run(c, done) },
			goroutine.OnPanic(func(*goroutine.PanicEvent) { met.BumpSum("panic", 1) }),
			goroutine.RestartDelay(time.Second),
		)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	close(done)
	<-stopped
	log.Log().Info("keeper stopped")
}
