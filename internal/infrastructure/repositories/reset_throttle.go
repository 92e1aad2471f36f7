package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// ResetThrottleImpl implements domain.ResetThrottle using Redis TTLs, so the
// window survives restarts and needs no in-process state.
type ResetThrottleImpl struct {
	client *redis.Client
	prefix string
	window time.Duration
}

// NewResetThrottle creates a redis-backed reset-request throttle.
func NewResetThrottle(client *redis.Client, window time.Duration) domain.ResetThrottle {
	return &ResetThrottleImpl{
		client: client,
		prefix: "reset:res:",
		window: window,
	}
}

// CanSend implements domain.ResetThrottle. The second return value is the
// remaining wait in seconds when sending is not allowed yet.
func (t *ResetThrottleImpl) CanSend(ctx context.Context, email string) (bool, int64, error) {
	ttl, err := t.client.TTL(ctx, t.prefix+email).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	// TTL <= 0 means the key is absent or expired
	if ttl <= 0 {
		return true, 0, nil
	}
	return false, int64(ttl.Seconds()), nil
}

// MarkSent implements domain.ResetThrottle
func (t *ResetThrottleImpl) MarkSent(ctx context.Context, email string) error {
	return t.client.Set(ctx, t.prefix+email, 1, t.window).Err()
}
