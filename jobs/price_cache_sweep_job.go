package jobs

import (
	"fmt"
	"time"

	"chargecompare-api/services"
)

// PriceCacheSweepJob periodically drops expired entries from the
// region-price cache. Reads already ignore stale entries; the sweep
// just keeps the bounded map from holding dead data indefinitely.
type PriceCacheSweepJob struct {
	cache  *services.PriceCache
	ticker *time.Ticker
	done   chan bool
}

// NewPriceCacheSweepJob creates a new cache sweep job
func NewPriceCacheSweepJob(cache *services.PriceCache, interval time.Duration) *PriceCacheSweepJob {
	return &PriceCacheSweepJob{
		cache:  cache,
		ticker: time.NewTicker(interval),
		done:   make(chan bool),
	}
}

// Start begins the sweep job
func (j *PriceCacheSweepJob) Start() {
	fmt.Println("Price cache sweep job started")

	go func() {
		for {
			select {
			case <-j.ticker.C:
				j.sweep()
			case <-j.done:
				fmt.Println("Price cache sweep job stopped")
				return
			}
		}
	}()
}

// Stop stops the sweep job
func (j *PriceCacheSweepJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *PriceCacheSweepJob) sweep() {
	if removed := j.cache.Sweep(); removed > 0 {
		fmt.Printf("Price cache sweep removed %d expired entries\n", removed)
	}
}
