package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestMemory_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || !bytes.Equal(got, []byte("v")) {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestMemory_MissReturnsNotFound(t *testing.T) {
	m := NewMemory()
	_, ok, err := m.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("missing key must miss")
	}
}

func TestMemory_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	m := NewMemory()
	m.now = func() time.Time { return clock }

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	clock = clock.Add(59 * time.Second)
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatal("entry must survive inside its TTL")
	}

	clock = clock.Add(2 * time.Second)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatal("entry must expire past its TTL")
	}

	// Expiry drops the entry, so a later clock rollback cannot revive it.
	clock = clock.Add(-time.Hour)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatal("expired entries are deleted, not hidden")
	}
}

func TestMemory_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	m := NewMemory()
	m.now = func() time.Time { return clock }

	if err := m.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	clock = clock.Add(365 * 24 * time.Hour)
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatal("zero TTL means no expiry")
	}
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_ = m.Set(ctx, "k", []byte("v"), 0)
	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatal("deleted key must miss")
	}
}

func TestMemory_OverwriteReplacesValueAndTTL(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	m := NewMemory()
	m.now = func() time.Time { return clock }

	_ = m.Set(ctx, "k", []byte("old"), time.Second)
	_ = m.Set(ctx, "k", []byte("new"), time.Hour)

	clock = clock.Add(time.Minute)
	got, ok, _ := m.Get(ctx, "k")
	if !ok || string(got) != "new" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}
