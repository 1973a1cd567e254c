package mongoclient

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolSize(t *testing.T) {
	req := require.New(t)
	req.Equal(uint64(0), poolSize(0, 3))
	req.Equal(uint64(0), poolSize(2, 0))

	total := uint64(runtime.NumCPU() * 4)
	req.Equal(total, poolSize(4, 1))
	req.Equal((total+2)/3, poolSize(4, 3))
}

func TestConnectRejectsBadUri(t *testing.T) {
	_, err := Connect(Config{Uri: "not a uri", DbName: "nftmarket"})
	require.Error(t, err)
}
