// Package ctx carries a request scoped logger next to the context.Context every call takes.
package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/nftmarket/base/log"
)

type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// Detach keeps the logger of c but drops its deadline, cancellation and values.
// Work that outlives the call, like post-commit publishing, runs on it.
func Detach(c Ctx) Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  c.Logger,
	}
}

// WithValue attaches val and adds it to the log fields
func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

// WithSilentValue attaches val without adding it to the log fields
func WithSilentValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger,
	}
}

// WithValues attaches every pair of kvs, the values are readable under their keys
func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	c, cancel := context.WithCancel(parent)
	return Ctx{Context: c, Logger: parent.Logger}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	c, cancel := context.WithTimeout(parent, timeout)
	return Ctx{Context: c, Logger: parent.Logger}, cancel
}
