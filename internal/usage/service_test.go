package usage

import (
	"context"
	"errors"
	"testing"
)

func TestConsumeWithinLimit(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	u, err := svc.Consume(ctx, "user-1", 1)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if u.Used != 1 {
		t.Fatalf("expected used=1, got %d", u.Used)
	}
}

func TestConsumeBeyondLimit(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	if _, err := svc.Consume(ctx, "user-1", 10); err != nil {
		t.Fatalf("consume up to limit: %v", err)
	}
	if _, err := svc.Consume(ctx, "user-1", 1); !errors.Is(err, ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}
}

func TestCanConsumeReportsWithoutConsuming(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	ok, u, err := svc.CanConsume(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("can consume: %v", err)
	}
	if !ok {
		t.Fatalf("expected allowance for fresh user")
	}
	if u.Used != 0 {
		t.Fatalf("CanConsume must not consume, used=%d", u.Used)
	}

	ok, _, err = svc.CanConsume(ctx, "user-1", 11)
	if err != nil {
		t.Fatalf("can consume: %v", err)
	}
	if ok {
		t.Fatalf("expected limit refusal for n beyond limit")
	}
}

func TestResetClearsUsage(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	if _, err := svc.Consume(ctx, "user-1", 5); err != nil {
		t.Fatalf("consume: %v", err)
	}
	u, err := svc.Reset(ctx, "user-1")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if u.Used != 0 {
		t.Fatalf("expected used=0 after reset, got %d", u.Used)
	}
}
