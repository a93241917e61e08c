package redisclient

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRedisForTest connects to the Redis pointed at by REDIS_ADDR
func setupRedisForTest(t *testing.T) (*Client, func()) {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		t.Skip("Skipping Redis integration tests: REDIS_ADDR not set")
	}

	client := NewClient(redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
	}))

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err(), "failed to connect to Redis")

	return client, func() {
		keys, _ := client.Keys(ctx, "test:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	}
}

func TestClient_SetGetDel(t *testing.T) {
	client, cleanup := setupRedisForTest(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "test:crianca:1", "payload", time.Minute).Err())

	value, err := client.Get(ctx, "test:crianca:1").Result()
	require.NoError(t, err)
	assert.Equal(t, "payload", value)

	exists, err := client.Exists(ctx, "test:crianca:1").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)

	ttl, err := client.TTL(ctx, "test:crianca:1").Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)

	deleted, err := client.Del(ctx, "test:crianca:1").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = client.Get(ctx, "test:crianca:1").Result()
	assert.ErrorIs(t, err, redis.Nil)
}

func TestClient_Keys(t *testing.T) {
	client, cleanup := setupRedisForTest(t)
	defer cleanup()
	ctx := context.Background()

	client.Set(ctx, "test:culto:a", "1", time.Minute)
	client.Set(ctx, "test:culto:b", "2", time.Minute)

	keys, err := client.Keys(ctx, "test:culto:*").Result()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"test:culto:a", "test:culto:b"}, keys)
}

func TestClient_UnreachableServer(t *testing.T) {
	client := NewClient(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.Error(t, client.Ping(ctx).Err())
	_, err := client.Get(ctx, "test:missing").Result()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, redis.Nil)
}
