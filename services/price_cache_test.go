package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"chargecompare-api/models"
)

func TestPriceCacheHitWithinTTL(t *testing.T) {
	cache := NewPriceCache(12 * time.Hour)

	result := models.PriceResult{Regular: 3.45, Premium: 4.15, Source: "EIA live data (CA)"}
	cache.Set("electricity:CA", result)

	got, ok := cache.Get("electricity:CA")
	assert.True(t, ok)
	assert.Equal(t, result, got)

	_, ok = cache.Get("electricity:NY")
	assert.False(t, ok)
}

func TestPriceCacheExpiry(t *testing.T) {
	cache := NewPriceCache(12 * time.Hour)
	base := time.Now()
	cache.now = func() time.Time { return base }

	cache.Set("gas:TX", models.PriceResult{Regular: 3.00})

	cache.now = func() time.Time { return base.Add(11 * time.Hour) }
	_, ok := cache.Get("gas:TX")
	assert.True(t, ok, "entry younger than TTL should be served")

	cache.now = func() time.Time { return base.Add(12 * time.Hour) }
	_, ok = cache.Get("gas:TX")
	assert.False(t, ok, "entry at TTL age should be treated as stale")
}

func TestPriceCacheOverwrite(t *testing.T) {
	cache := NewPriceCache(12 * time.Hour)

	cache.Set("gas:CA", models.PriceResult{Regular: 4.50})
	cache.Set("gas:CA", models.PriceResult{Regular: 4.85})

	got, ok := cache.Get("gas:CA")
	assert.True(t, ok)
	assert.Equal(t, 4.85, got.Regular)
	assert.Equal(t, 1, cache.Len())
}

func TestPriceCacheSweep(t *testing.T) {
	cache := NewPriceCache(12 * time.Hour)
	base := time.Now()
	cache.now = func() time.Time { return base }

	cache.Set("gas:CA", models.PriceResult{Regular: 4.85})
	cache.Set("gas:TX", models.PriceResult{Regular: 3.00})

	cache.now = func() time.Time { return base.Add(6 * time.Hour) }
	cache.Set("electricity:CA", models.PriceResult{Regular: 0.302})

	cache.now = func() time.Time { return base.Add(13 * time.Hour) }
	removed := cache.Sweep()

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, cache.Len())

	_, ok := cache.Get("electricity:CA")
	assert.True(t, ok, "unexpired entry must survive the sweep")
}
