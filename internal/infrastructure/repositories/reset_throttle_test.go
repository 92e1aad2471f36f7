package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupThrottle(t *testing.T, window time.Duration) (*miniredis.Miniredis, *ResetThrottleImpl) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, NewResetThrottle(client, window).(*ResetThrottleImpl)
}

func TestResetThrottle_AllowsFirstRequest(t *testing.T) {
	_, throttle := setupThrottle(t, 2*time.Minute)

	ok, wait, err := throttle.CanSend(context.Background(), "medan@example.com")
	if err != nil {
		t.Fatalf("CanSend failed: %v", err)
	}
	if !ok {
		t.Error("expected first request to be allowed")
	}
	if wait != 0 {
		t.Errorf("expected zero wait, got %d", wait)
	}
}

func TestResetThrottle_BlocksWithinWindow(t *testing.T) {
	_, throttle := setupThrottle(t, 2*time.Minute)
	ctx := context.Background()

	if err := throttle.MarkSent(ctx, "medan@example.com"); err != nil {
		t.Fatalf("MarkSent failed: %v", err)
	}

	ok, wait, err := throttle.CanSend(ctx, "medan@example.com")
	if err != nil {
		t.Fatalf("CanSend failed: %v", err)
	}
	if ok {
		t.Error("expected request within the window to be blocked")
	}
	if wait <= 0 || wait > 120 {
		t.Errorf("expected wait within the 2 minute window, got %d", wait)
	}

	// a different address is unaffected
	ok, _, err = throttle.CanSend(ctx, "other@example.com")
	if err != nil {
		t.Fatalf("CanSend failed: %v", err)
	}
	if !ok {
		t.Error("expected other addresses to be allowed")
	}
}

func TestResetThrottle_AllowsAfterWindow(t *testing.T) {
	mr, throttle := setupThrottle(t, 2*time.Minute)
	ctx := context.Background()

	if err := throttle.MarkSent(ctx, "medan@example.com"); err != nil {
		t.Fatalf("MarkSent failed: %v", err)
	}

	mr.FastForward(2*time.Minute + time.Second)

	ok, _, err := throttle.CanSend(ctx, "medan@example.com")
	if err != nil {
		t.Fatalf("CanSend failed: %v", err)
	}
	if !ok {
		t.Error("expected request after the window to be allowed")
	}
}
