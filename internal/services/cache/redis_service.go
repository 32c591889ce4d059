package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrNotFound is returned by Get for a missing or expired key.
var ErrNotFound = errors.New("cache: key not found")

type RedisClient[T any] struct {
	client     redis.Cmdable
	logger     *zap.Logger
	prefix     string
	expiration time.Duration
}

func NewRedisClient[T any](
	client redis.Cmdable,
	logger *zap.Logger,
	prefix string,
	expiration time.Duration,
) *RedisClient[T] {
	return &RedisClient[T]{client: client, logger: logger, prefix: prefix, expiration: expiration}
}

func (c *RedisClient[T]) key(id string) string {
	return c.prefix + id
}

// Set stores value and restarts its expiration.
func (c *RedisClient[T]) Set(ctx context.Context, id string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.logger.Debug("redis set", zap.String("key", c.key(id)), zap.Int("bytes", len(data)))
	return c.client.Set(ctx, c.key(id), data, c.expiration).Err()
}

//nolint:ireturn
func (c *RedisClient[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, err
	}

	result := new(T)
	if err := json.Unmarshal(data, result); err != nil {
		return zero, err
	}
	return *result, nil
}

func (c *RedisClient[T]) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
