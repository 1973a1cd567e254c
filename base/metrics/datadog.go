package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftmarket/base/log"
)

const (
	ddPort = 8125
	// clients are picked round robin, the size needs to be 2^n
	ddClientsSize = 16
	// buffered bumps per client before a flush
	ddBufferSize = 10
)

var (
	initOnce  sync.Once
	clients   []statsCli
	clientIdx uint32
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// UseLogClient routes every metric to the debug log instead of a datadog agent.
// It has to be called before the first bump.
func UseLogClient() {
	initOnce.Do(initLogClients)
}

func client() statsCli {
	initOnce.Do(initClients)
	i := atomic.AddUint32(&clientIdx, 1) & (ddClientsSize - 1)
	return clients[i]
}

func initLogClients() {
	clients = make([]statsCli, ddClientsSize)
	for i := range clients {
		clients[i] = logClient{}
	}
}

func initClients() {
	host := viper.GetString("datadog_host")
	if host == "" {
		log.Log().Info("datadog_host not set, metrics go to log")
		initLogClients()
		return
	}

	addr := fmt.Sprintf("%s:%d", host, ddPort)
	clients = make([]statsCli, ddClientsSize)
	for i := range clients {
		cli, err := statsd.NewBuffered(addr, ddBufferSize)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
		}
		clients[i] = cli
	}
	log.Log().WithField("addr", addr).Info("connected to datadog agent")
}
