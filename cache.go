package gestor

import (
	"sync"
	"time"
)

// memCache is a process-local cache of decoded collections with a fixed
// time-to-live. Invalidation is deliberately coarse: a write to any
// collection drops every entry, because derived views join collections
// and must never observe a pre-write value next to a post-write one.
type memCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value  any
	stored time.Time
}

func newMemCache(ttl time.Duration, now func() time.Time) *memCache {
	return &memCache{ttl: ttl, now: now, entries: make(map[string]cacheEntry)}
}

// get returns the cached value for name if it is younger than the TTL.
func (c *memCache) get(name string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.stored) >= c.ttl {
		delete(c.entries, name)
		return nil, false
	}
	return entry.value, true
}

// put stores a value for name, stamped with the current time.
func (c *memCache) put(name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = cacheEntry{value: value, stored: c.now()}
}

// invalidateAll drops every cached entry.
func (c *memCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}
