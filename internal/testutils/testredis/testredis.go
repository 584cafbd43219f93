package testredis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/sergeii/sg41/internal/testutils"
)

// Run starts an in-memory redis server that lives as long as the test,
// together with a client connected to it.
// The server is returned so that tests can inspect the stored data or close it early.
func Run(tb testing.TB) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(tb)
	rdb := redis.NewClient(&redis.Options{
		Addr:       mr.Addr(),
		MaxRetries: -1, // a closed server must fail the call right away
	})
	tb.Cleanup(func() {
		testutils.Ignore(rdb.Close())
	})
	return mr, rdb
}

func MakeClient(tb testing.TB) *redis.Client {
	_, rdb := Run(tb)
	return rdb
}
