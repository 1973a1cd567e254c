package redisclient

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPoolSizing(t *testing.T) {
	req := require.New(t)

	p := newPool(Config{Uri: "localhost:6379"})
	req.Equal(defaultMaxActive, p.MaxActive)
	req.Equal(defaultMaxIdle, p.MaxIdle)

	p = newPool(Config{Uri: "localhost:6379", PoolMultiplier: 8})
	req.Equal(runtime.NumCPU()*8, p.MaxActive)
	req.Equal(runtime.NumCPU()*2, p.MaxIdle)
}

func TestConnectFailsWithoutServer(t *testing.T) {
	_, err := Connect(Config{Uri: "127.0.0.1:1"})
	require.Error(t, err)
}
