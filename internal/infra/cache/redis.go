package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/pkg/config"
	"carrental-storefront/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

// CarCache is a read-through cache in front of another CarProvider. Writes go to the
// wrapped provider and then drop the affected keys. Redis failures are logged and bypassed.
type CarCache struct {
	client   redis.Cmdable
	next     shared.CarProvider
	carTTL   time.Duration
	fleetTTL time.Duration
	logger   *slog.Logger
}

func NewCarCache(client redis.Cmdable, next shared.CarProvider, cfg config.RedisConfig, logger *slog.Logger) *CarCache {
	return &CarCache{
		client:   client,
		next:     next,
		carTTL:   cfg.CarTTL,
		fleetTTL: cfg.FleetTTL,
		logger:   logger,
	}
}

func (c *CarCache) GetByID(ctx context.Context, id int64) (*car.Car, error) {
	var cached car.Car
	if hit := c.get(ctx, carKey(id), &cached); hit {
		return &cached, nil
	}

	record, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, carKey(id), record, c.carTTL)
	return record, nil
}

func (c *CarCache) GetAll(ctx context.Context) ([]*car.Car, error) {
	var cached []*car.Car
	if hit := c.get(ctx, fleetKey(), &cached); hit {
		return cached, nil
	}

	cars, err := c.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, fleetKey(), cars, c.fleetTTL)
	return cars, nil
}

func (c *CarCache) Create(ctx context.Context, record *car.Car) (int64, error) {
	id, err := c.next.Create(ctx, record)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx, fleetKey())
	return id, nil
}

func (c *CarCache) Update(ctx context.Context, record *car.Car) error {
	if err := c.next.Update(ctx, record); err != nil {
		return err
	}
	c.invalidate(ctx, carKey(record.ID), fleetKey())
	return nil
}

func (c *CarCache) get(ctx context.Context, key string, dst any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("car cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warn("car cache entry is corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *CarCache) set(ctx context.Context, key string, v any, ttl time.Duration) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		c.logger.Warn("car cache write failed", "key", key, "error", err)
	}
}

func (c *CarCache) invalidate(ctx context.Context, keys ...string) {
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("car cache invalidation failed", "keys", keys, "error", err)
	}
}

func carKey(id int64) string {
	return fmt.Sprintf("cache:car:%d", id)
}

func fleetKey() string {
	return "cache:cars"
}

var _ shared.CarProvider = (*CarCache)(nil)
