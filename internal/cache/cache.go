// Package cache - явный ключевой кэш с TTL и инвалидацией. Потеря кэша стоит только производительности.
package cache

import (
	"context"
	"time"
)

// Cache хранит JSON-представление значений по строковому ключу
type Cache interface {
	// Get заполняет dest и возвращает true при попадании; промах не является ошибкой.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
