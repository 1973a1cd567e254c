/*
Package metrics records service metrics on a DataDog agent.
Naming convention of keys:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/nftmarket/base/env"
	"github.com/x-xyz/nftmarket/base/log"
)

// Ender stops a timer started by BumpTime
type Ender interface {
	End()
}

type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	// BumpTime starts a timer, the usual form is
	//
	//     defer met.BumpTime("buy.time").End()
	BumpTime(key string, tags ...string) Ender
}

// Metrics prefixes every key with the package name and tags it with the deployment
type Metrics struct {
	pkgName string
	tags    []string
}

func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		tags: []string{
			// an empty host tag keeps the agent from attaching host tags
			"host:",
			"pod:" + env.PodName(),
			"env:" + env.EnvName(),
			"app:" + env.AppName(),
		},
	}
}

// disabled drops bumps of packages listed in `metrics.disabled`
func (mt *Metrics) disabled() bool {
	for _, p := range viper.GetStringSlice("metrics.disabled") {
		if p == mt.pkgName {
			return true
		}
	}
	return false
}

// sampleRate is `metrics.sampleRate` in (0, 1], 1 when unset
func (mt *Metrics) sampleRate() float64 {
	if rate := viper.GetFloat64("metrics.sampleRate"); rate > 0 && rate <= 1 {
		return rate
	}
	return 1
}

type sendFunc func(cli statsCli, name string, tags []string, rate float64) error

func (mt *Metrics) send(key string, tags []string, f sendFunc) {
	if mt.disabled() {
		return
	}
	// a bad tag list must never take the caller down
	defer func() {
		if p := recover(); p != nil {
			log.Log().WithFields(log.Fields{"panic": p, "pkg": mt.pkgName, "key": key}).Error("metric bump panicked")
		}
	}()

	all := make([]string, 0, len(mt.tags)+len(tags)/2)
	all = append(all, mt.tags...)
	all = append(all, parseTag(tags)...)

	name := mt.pkgName + "." + key
	if err := f(client(), name, all, mt.sampleRate()); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": name}).Error("metric bump failed")
	}
}

func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.send(key, tags, func(cli statsCli, name string, tags []string, rate float64) error {
		return cli.Gauge(name, val, tags, rate)
	})
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.send(key, tags, func(cli statsCli, name string, tags []string, rate float64) error {
		return cli.Count(name, int64(val), tags, rate)
	})
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.send(key, tags, func(cli statsCli, name string, tags []string, rate float64) error {
		return cli.Histogram(name, val, tags, rate)
	})
}

func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	start := time.Now()
	return enderFunc(func() {
		ms := float64(time.Since(start)) / float64(time.Millisecond)
		mt.send(key, tags, func(cli statsCli, name string, tags []string, rate float64) error {
			return cli.TimeInMilliseconds(name, ms, tags, rate)
		})
	})
}

type enderFunc func()

func (f enderFunc) End() {
	f()
}

// parseTag turns key, value pairs into datadog tags
func parseTag(tags []string) []string {
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	res := make([]string, 0, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		res = append(res, tags[i]+":"+tags[i+1])
	}
	return res
}
