package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	stockAlertKeyPrefix = "stock_alert:"

	// DefaultAlertCooldown is how long a carton stays silent after an alert.
	DefaultAlertCooldown = 6 * time.Hour
)

// AlertDeduplicator keeps low-stock e-mails from repeating for every
// assignment that touches an already-low carton.
type AlertDeduplicator struct {
	client   *redis.Client
	cooldown time.Duration
}

func NewAlertDeduplicator(client *redis.Client, cooldown time.Duration) *AlertDeduplicator {
	if cooldown <= 0 {
		cooldown = DefaultAlertCooldown
	}
	return &AlertDeduplicator{client: client, cooldown: cooldown}
}

// Format: stock_alert:{carton_id}
func (d *AlertDeduplicator) buildKey(cartonID uint) string {
	return fmt.Sprintf("%s%d", stockAlertKeyPrefix, cartonID)
}

// TryAcquire reports whether the caller should send the alert. SetNX keeps
// concurrent instances from both sending.
func (d *AlertDeduplicator) TryAcquire(ctx context.Context, cartonID uint) (bool, error) {
	acquired, err := d.client.SetNX(ctx, d.buildKey(cartonID), "1", d.cooldown).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire stock alert lock: %w", err)
	}
	return acquired, nil
}

// Clear re-arms alerts for a carton, e.g. after a restock.
func (d *AlertDeduplicator) Clear(ctx context.Context, cartonID uint) error {
	if err := d.client.Del(ctx, d.buildKey(cartonID)).Err(); err != nil {
		return fmt.Errorf("failed to clear stock alert: %w", err)
	}
	return nil
}

// RemainingCooldown returns 0 when the carton is not in cooldown.
func (d *AlertDeduplicator) RemainingCooldown(ctx context.Context, cartonID uint) (time.Duration, error) {
	ttl, err := d.client.TTL(ctx, d.buildKey(cartonID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get cooldown: %w", err)
	}
	// -2 missing, -1 no expiry
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}
