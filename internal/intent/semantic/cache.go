package semantic

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultTTL is how long a cached verdict stays fresh.
const DefaultTTL = 5 * time.Minute

type cacheEntry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a bounded, thread-safe TTL cache. Staleness is checked lazily on Get.
type Cache[V any] struct {
	entries *lru.Cache[string, cacheEntry[V]]
	ttl     time.Duration
	now     func() time.Time
}

// CacheOption customizes a Cache.
type CacheOption func(*cacheSettings)

type cacheSettings struct {
	now func() time.Time
}

// WithCacheClock injects the clock used for staleness checks.
func WithCacheClock(now func() time.Time) CacheOption {
	return func(s *cacheSettings) {
		if now != nil {
			s.now = now
		}
	}
}

// NewCache creates a cache holding at most size entries for ttl.
func NewCache[V any](size int, ttl time.Duration, opts ...CacheOption) (*Cache[V], error) {
	s := cacheSettings{now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}
	entries, err := lru.New[string, cacheEntry[V]](size)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{entries: entries, ttl: ttl, now: s.now}, nil
}

// Get returns a fresh value for key. Stale entries are dropped.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	e, ok := c.entries.Get(key)
	if !ok {
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		c.entries.Remove(key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key.
func (c *Cache[V]) Set(key string, value V) {
	c.entries.Add(key, cacheEntry[V]{value: value, storedAt: c.now()})
}

// Len returns the number of entries, including stale ones not yet read.
func (c *Cache[V]) Len() int {
	return c.entries.Len()
}

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	c.entries.Purge()
}

// TTL returns the freshness window.
func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}
