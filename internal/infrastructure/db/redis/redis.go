// Package redis hosts the loyalty accrual idempotency store. Redis keeps one
// marker per accrued booking so a re-confirmed booking never double-counts.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/maisonbelle/booking-api/internal/pkg/config"
)

const pingTimeout = 5 * time.Second

// Connect builds the Redis client from the service configuration and verifies
// connectivity with a bounded ping before handing it to the dedup store.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
