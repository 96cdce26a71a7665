package cache

import (
	"context"
	"time"

	"carrental-storefront/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// ConfirmGuard holds idempotency keys with SETNX.
type ConfirmGuard struct {
	client redis.Cmdable
}

func NewConfirmGuard(client redis.Cmdable) *ConfirmGuard {
	return &ConfirmGuard{client: client}
}

func (g *ConfirmGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return g.client.SetNX(ctx, "lock:"+key, "held", ttl).Result()
}

// NopGuard admits every key; used when no redis is configured.
type NopGuard struct{}

func (NopGuard) Acquire(context.Context, string, time.Duration) (bool, error) {
	return true, nil
}

var (
	_ shared.ConfirmGuard = (*ConfirmGuard)(nil)
	_ shared.ConfirmGuard = NopGuard{}
)
