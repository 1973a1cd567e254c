package notifier

import (
	"encoding/json"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/nftmarket/base/backoff"
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/base/metrics"
	"github.com/x-xyz/nftmarket/domain/event"
	"github.com/x-xyz/nftmarket/domain/keys"
	"github.com/x-xyz/nftmarket/service/redis"
)

const (
	publishAttempts = 3
	scheduleTimeout = 3 * time.Second
)

var met = metrics.New("notifier")

type Cfg struct {
	Redis   redis.Service
	Channel string
	Workers int
	// Backoff is the first retry delay, later retries grow linearly
	Backoff time.Duration
}

// Notifier publishes committed events to a redis channel. Delivery is best effort.
type Notifier interface {
	event.Publisher
	Close()
}

type impl struct {
	redis   redis.Service
	channel string
	backoff time.Duration
	pool    *goroutines.Pool
}

func New(cfg *Cfg) Notifier {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	return &impl{
		redis:   cfg.Redis,
		channel: keys.RedisKey(keys.PfxEvents, cfg.Channel),
		backoff: cfg.Backoff,
		pool:    goroutines.NewPool(workers, goroutines.WithTaskQueueLength(1024)),
	}
}

func (im *impl) Publish(c ctx.Ctx, e *event.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "seq": e.Seq}).Error("json.Marshal failed")
		return err
	}

	// the caller's context may belong to a finished transaction
	bg := ctx.Detach(c)
	if err := im.pool.ScheduleWithTimeout(scheduleTimeout, func() {
		im.publish(bg, e, payload)
	}); err != nil {
		met.BumpSum("schedule.err", 1)
		c.WithFields(log.Fields{"err": err, "seq": e.Seq}).Error("pool.ScheduleWithTimeout failed")
		return err
	}
	return nil
}

func (im *impl) publish(c ctx.Ctx, e *event.Event, payload []byte) {
	defer met.BumpTime("publish.time").End()

	b := backoff.NewLinear(im.backoff, 10*im.backoff)
	err := backoff.Retry(c, b, publishAttempts, func() error {
		_, err := im.redis.Publish(c, im.channel, payload)
		return err
	})
	if err != nil {
		met.BumpSum("publish.err", 1, "type", string(e.Type))
		c.WithFields(log.Fields{"err": err, "seq": e.Seq, "type": e.Type}).Error("redis.Publish failed")
		return
	}
	met.BumpSum("publish.ok", 1, "type", string(e.Type))
}

func (im *impl) Close() {
	im.pool.Release()
}
