package utils

import (
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func TestStartHealthMonitorChecksImmediately(t *testing.T) {
	// A client pointed at nothing: the check itself fails fast, but a
	// snapshot must still be recorded well before the first tick.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	defer client.Close()

	StartHealthMonitor(client)

	require.Eventually(t, func() bool {
		return !GetHealthStatus().CheckedAt.IsZero()
	}, 2*time.Second, 20*time.Millisecond, "first health check must not wait for the ticker")
	require.False(t, GetHealthStatus().Redis)
}
