package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultGuardWindow = 10 * time.Minute

// BookingGuard rejects repeated submissions of the same booking using SETNX.
// Key format: booking:guard:<user_id>:<service_id>:<unix_date>
type BookingGuard struct {
	client *redis.Client
	window time.Duration
}

// NewBookingGuard creates a BookingGuard wrapping the given Redis client.
// window <= 0 falls back to defaultGuardWindow.
func NewBookingGuard(client *redis.Client, window time.Duration) *BookingGuard {
	if window <= 0 {
		window = defaultGuardWindow
	}
	return &BookingGuard{client: client, window: window}
}

// Acquire reports whether this is the first submission inside the window.
func (g *BookingGuard) Acquire(ctx context.Context, userID, serviceID string, date time.Time) (bool, error) {
	ok, err := g.client.SetNX(ctx, guardKey(userID, serviceID, date), "1", g.window).Result()
	if err != nil {
		return false, fmt.Errorf("booking guard: %w", err)
	}
	return ok, nil
}

// Release drops the guard so a failed submission can be retried at once.
func (g *BookingGuard) Release(ctx context.Context, userID, serviceID string, date time.Time) error {
	if err := g.client.Del(ctx, guardKey(userID, serviceID, date)).Err(); err != nil {
		return fmt.Errorf("booking guard release: %w", err)
	}
	return nil
}

func guardKey(userID, serviceID string, date time.Time) string {
	return fmt.Sprintf("booking:guard:%s:%s:%d", userID, serviceID, date.Unix())
}
