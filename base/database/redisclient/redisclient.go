package redisclient

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/nftmarket/base/backoff"
	"github.com/x-xyz/nftmarket/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second

	defaultMaxIdle   = 200
	defaultMaxActive = 1024

	dialAttempts = 4
)

type Config struct {
	Uri      string
	Password string
	// PoolMultiplier sizes the pool as NumCPU * PoolMultiplier with a quarter kept idle, 0 keeps the defaults
	PoolMultiplier float64
	// Retry retries the first dial, containers sometimes start before their network is ready
	Retry bool
}

// MustConnect panics when Connect fails
func MustConnect(cfg Config) *redis.Pool {
	p, err := Connect(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": cfg.Uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// Connect builds a pool on cfg and checks one connection out of it
func Connect(cfg Config) (*redis.Pool, error) {
	p := newPool(cfg)

	attempts := 1
	if cfg.Retry {
		attempts = dialAttempts
	}
	err := backoff.Retry(context.Background(), backoff.NewLinear(time.Second, 5*time.Second), attempts, func() error {
		c := p.Get()
		defer c.Close()
		if _, err := c.Do("PING"); err != nil {
			log.Log().WithFields(log.Fields{"redisURI": cfg.Uri, "err": err}).Warn("redis ping failed")
			return err
		}
		return nil
	})
	if err != nil {
		p.Close()
		return nil, err
	}

	log.Log().WithField("redisURI", cfg.Uri).Info("redis connected")
	return p, nil
}

func newPool(cfg Config) *redis.Pool {
	maxIdle, maxActive := defaultMaxIdle, defaultMaxActive
	if cfg.PoolMultiplier > 0 {
		maxActive = int(float64(runtime.NumCPU()) * cfg.PoolMultiplier)
		maxIdle = maxActive / 4
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if cfg.Password != "" {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}

	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			if strings.HasPrefix(cfg.Uri, "redis://") || strings.HasPrefix(cfg.Uri, "rediss://") {
				return redis.DialURL(cfg.Uri, opts...)
			}
			return redis.Dial("tcp", cfg.Uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// recently used connections are trusted
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}
