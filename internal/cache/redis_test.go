package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// stubClient implements redisClient for testing.
type stubClient struct {
	pingErr error
}

func (s *stubClient) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", s.pingErr)
}

func (s *stubClient) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func (s *stubClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (s *stubClient) Close() error { return nil }

func TestNewRedisClient(t *testing.T) {
	t.Cleanup(func() {
		redisNewClient = func(o *redis.Options) redisClient { return redis.NewClient(o) }
	})

	t.Run("success", func(t *testing.T) {
		var opts *redis.Options
		stub := &stubClient{}
		redisNewClient = func(o *redis.Options) redisClient {
			opts = o
			return stub
		}

		c, err := NewRedisClient("127.0.0.1:6379", "secret", 1)
		require.NoError(t, err)
		require.Equal(t, stub, c)
		require.Equal(t, "127.0.0.1:6379", opts.Addr)
		require.Equal(t, "secret", opts.Password)
		require.Equal(t, 1, opts.DB)
	})

	t.Run("ping fail", func(t *testing.T) {
		redisNewClient = func(o *redis.Options) redisClient {
			return &stubClient{pingErr: errors.New("down")}
		}
		_, err := NewRedisClient("127.0.0.1:6379", "", 0)
		require.Error(t, err)
	})
}

func TestFakeCache(t *testing.T) {
	ctx := context.Background()
	f := &FakeCache{}

	require.NoError(t, f.Close())
	require.Panics(t, func() { f.Get(ctx, "k") })
	require.Panics(t, func() { f.Set(ctx, "k", "v", 0) })

	f.GetFn = func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("25", nil)
	}
	f.SetFn = func(context.Context, string, any, time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("OK", nil)
	}
	f.CloseFn = func() error { return errors.New("close") }

	require.Equal(t, "25", f.Get(ctx, "k").Val())
	require.NoError(t, f.Set(ctx, "k", "25", time.Second).Err())
	require.Error(t, f.Close())
}
