package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Accrual markers outlive any realistic redelivery window; after expiry the
// loyalty aggregate's upsert is still keyed per booking in the audit trail.
const accrualTTL = 30 * 24 * time.Hour

// AccrualDedup provides idempotency checks for loyalty accruals backed by
// Redis. Key format: loyalty:accrual:<booking_id>
type AccrualDedup struct {
	client *redis.Client
}

// NewAccrualDedup creates an AccrualDedup wrapping the given Redis client.
func NewAccrualDedup(client *redis.Client) *AccrualDedup {
	return &AccrualDedup{client: client}
}

// IsDuplicate reports whether this booking has already accrued loyalty.
func (d *AccrualDedup) IsDuplicate(ctx context.Context, bookingID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(bookingID)).Result()
	if err != nil {
		return false, fmt.Errorf("accrual dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this booking's accrual has been applied.
func (d *AccrualDedup) Mark(ctx context.Context, bookingID string) error {
	return d.client.Set(ctx, d.key(bookingID), "1", accrualTTL).Err()
}

func (d *AccrualDedup) key(bookingID string) string {
	return fmt.Sprintf("loyalty:accrual:%s", bookingID)
}
