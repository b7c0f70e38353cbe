package geo

import (
	"context"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// DistanceCache memoizes branch-pair distances. Branch coordinates rarely
// change, so cached answers are served for hours without a staleness concern.

type DistanceCache interface {
	Get(ctx context.Context, key string) (float64, bool, error)
	Set(ctx context.Context, key string, km float64, ttl time.Duration) error
}

type RedisDistanceCache struct {
	client *redis.Client
}

var _ DistanceCache = (*RedisDistanceCache)(nil)

func NewRedisDistanceCache(addr string, password string, db int) *RedisDistanceCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisDistanceCache{client: client}
}

func (c *RedisDistanceCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisDistanceCache) Close() error {
	return c.client.Close()
}

func (c *RedisDistanceCache) Get(ctx context.Context, key string) (float64, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	km, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, err
	}
	return km, true, nil
}

func (c *RedisDistanceCache) Set(ctx context.Context, key string, km float64, ttl time.Duration) error {
	return c.client.Set(ctx, key, strconv.FormatFloat(km, 'f', -1, 64), ttl).Err()
}

// NoopDistanceCache is used when no Redis address is configured or Redis is
// unreachable at startup; every lookup goes straight to the distance API.

type NoopDistanceCache struct{}

var _ DistanceCache = NoopDistanceCache{}

func (NoopDistanceCache) Get(context.Context, string) (float64, bool, error) {
	return 0, false, nil
}

func (NoopDistanceCache) Set(context.Context, string, float64, time.Duration) error {
	return nil
}
