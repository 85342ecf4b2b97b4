package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	redisClient *redis.Client
	prefix      string
}

// NewRedisCache создает кэш поверх Redis; prefix отделяет ключи приложения
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{
		redisClient: client,
		prefix:      prefix,
	}
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

// Get пытается получить значение из Redis
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.redisClient.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s from cache: %w", key, err)
	}
	return true, nil
}

// Set сохраняет значение в Redis
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", key, err)
	}
	if err := c.redisClient.Set(ctx, c.key(key), val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}

// Delete удаляет ключи из Redis кэша
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	if err := c.redisClient.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}
