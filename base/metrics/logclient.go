package metrics

import (
	"github.com/x-xyz/nftmarket/base/log"
)

// logClient writes metrics to the debug log, used when no agent is configured
type logClient struct{}

func (logClient) emit(kind, name string, value interface{}, tags []string) error {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric " + kind)
	return nil
}

func (c logClient) Gauge(name string, value float64, tags []string, rate float64) error {
	return c.emit("gauge", name, value, tags)
}

func (c logClient) Count(name string, value int64, tags []string, rate float64) error {
	return c.emit("count", name, value, tags)
}

func (c logClient) Histogram(name string, value float64, tags []string, rate float64) error {
	return c.emit("histogram", name, value, tags)
}

func (c logClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	return c.emit("time", name, value, tags)
}
