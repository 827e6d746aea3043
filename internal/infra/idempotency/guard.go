// Package idempotency claims client request keys so retried checkouts run once.
package idempotency

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const keyPrefix = "idempotency-key:"

// redisStore is the part of *redis.Client the guard uses.
type redisStore interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisGuard struct {
	store redisStore
	ttl   time.Duration
}

// newRedisGuard is split out so tests can supply a fake store.
func newRedisGuard(store redisStore, ttl time.Duration) *redisGuard {
	return &redisGuard{store: store, ttl: ttl}
}

// Claim sets the key only if absent. The TTL bounds how long a crashed request blocks retries.
func (g *redisGuard) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := g.store.SetNX(ctx, keyPrefix+key, time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "claim idempotency key")
	}

	return ok, nil
}

func (g *redisGuard) Release(ctx context.Context, key string) error {
	if err := g.store.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "release idempotency key")
	}

	return nil
}

// noopGuard accepts every key.
type noopGuard struct{}

// NewNoopGuard returns a guard that never reports duplicates.
func NewNoopGuard() service.IdempotencyGuard {
	return noopGuard{}
}

func (noopGuard) Claim(context.Context, string) (bool, error) { return true, nil }

func (noopGuard) Release(context.Context, string) error { return nil }

// Params holds dependencies for the guard, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewGuard returns a Redis guard when idempotency is enabled, otherwise a no-op.
func NewGuard(params Params) (service.IdempotencyGuard, error) {
	cfg := params.Config.Idempotency
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Checkout idempotency disabled, using no-op guard")

		return NewNoopGuard(), nil
	}
	if cfg.RedisAddr == "" {
		return nil, errors.New("redis address is required when idempotency is enabled")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Checkout idempotency guard connected", slog.String("addr", cfg.RedisAddr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(rdb.Close())
		},
	})

	return newRedisGuard(rdb, cfg.TTL), nil
}
