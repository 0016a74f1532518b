package semantic_test

import (
	"sync"
	"testing"
	"time"

	"smartfactory-assistant/internal/intent/semantic"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestCacheTTL(t *testing.T) {
	clock := newFakeClock()
	c, err := semantic.NewCache[string](10, 5*time.Minute, semantic.WithCacheClock(clock.Now))
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	c.Set("k", "v")
	clock.Advance(4*time.Minute + 59*time.Second)
	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Fatalf("expected fresh hit, got %q %v", v, ok)
	}

	clock.Advance(time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry must expire at the TTL")
	}
	if c.Len() != 0 {
		t.Errorf("stale entry should be dropped on read, len = %d", c.Len())
	}
}

func TestCacheBoundedAndPurge(t *testing.T) {
	c, err := semantic.NewCache[int](2, time.Minute)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("oldest entry should be evicted")
	}

	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len after Purge = %d", c.Len())
	}
	if c.TTL() != time.Minute {
		t.Errorf("TTL = %v", c.TTL())
	}
}

func TestNewCacheRejectsZeroSize(t *testing.T) {
	if _, err := semantic.NewCache[int](0, time.Minute); err == nil {
		t.Error("expected error for zero size")
	}
}
