package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/observability"
	"github.com/safekids/app-safekids/internal/redisclient"
	"github.com/safekids/app-safekids/internal/utils"
	"go.uber.org/zap"
)

// cache is a read-through JSON cache in Redis. A nil client disables it.
type cache struct {
	client *redisclient.Client
	ttl    time.Duration
	logger *logging.SafeLogger
}

func newCache(client *redisclient.Client, ttl time.Duration) *cache {
	return &cache{client: client, ttl: ttl, logger: logging.Logger}
}

func cacheKey(entity, id string) string {
	return fmt.Sprintf("%s:id:%s", entity, id)
}

func (c *cache) enabled() bool {
	return c != nil && c.client != nil
}

// get decodes the cached value into out and reports a hit
func (c *cache) get(ctx context.Context, key string, out interface{}) bool {
	if !c.enabled() {
		return false
	}

	ctx, span := utils.TraceCacheGet(ctx, key)
	defer span.End()

	cached, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(cached), out); err != nil {
		c.logger.Warn("cache entry undecodable", zap.String("key", key), zap.Error(err))
		return false
	}

	entity, _, _ := strings.Cut(key, ":")
	observability.CacheHits.WithLabelValues(entity).Inc()
	return true
}

func (c *cache) set(ctx context.Context, key string, value interface{}) {
	c.setTTL(ctx, key, value, c.ttl)
}

func (c *cache) setTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if !c.enabled() {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache entry unencodable", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *cache) del(ctx context.Context, keys ...string) {
	if !c.enabled() || len(keys) == 0 {
		return
	}

	ctx, span := utils.TraceCacheInvalidation(ctx, keys[0])
	defer span.End()

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
