package services

import (
	"sync"
	"time"

	"chargecompare-api/models"
)

// PriceCache is a process-wide TTL cache for resolved region prices.
// It is constructed once in main and injected into the PriceService so
// tests can use a fresh instance per case. The key space is bounded
// (price type × ~50 region codes plus the national key), so a plain
// map with overwrite-on-write is enough; no LRU.
type PriceCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]priceCacheEntry
}

type priceCacheEntry struct {
	result   models.PriceResult
	storedAt time.Time
}

func NewPriceCache(ttl time.Duration) *PriceCache {
	return &PriceCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]priceCacheEntry),
	}
}

// Get returns the cached result for key if it is younger than the TTL.
func (c *PriceCache) Get(key string) (models.PriceResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.storedAt) >= c.ttl {
		return models.PriceResult{}, false
	}
	return entry.result, true
}

// Set stores a result for key, overwriting any previous entry.
func (c *PriceCache) Set(key string, result models.PriceResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = priceCacheEntry{
		result:   result,
		storedAt: c.now(),
	}
}

// Sweep removes expired entries and reports how many were dropped.
func (c *PriceCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if c.now().Sub(entry.storedAt) >= c.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of entries currently held, expired or not.
func (c *PriceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
