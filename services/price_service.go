package services

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"

	"chargecompare-api/config"
	"chargecompare-api/models"
	"chargecompare-api/utils"
)

// ErrInvalidZIP is the only resolver error surfaced to end users; every
// downstream failure is absorbed by the fallback chain.
var ErrInvalidZIP = errors.New("invalid ZIP code: expected 5 digits, optionally followed by -XXXX")

// ErrLookupSuperseded is returned when a newer lookup was started while
// this one was in flight; the stale result must be discarded.
var ErrLookupSuperseded = errors.New("lookup superseded by a newer request")

// PriceService resolves a ZIP code to current gas and electricity
// prices through a tiered fallback chain: cache, live API, static state
// table, national average. Live failures are logged, never propagated.
type PriceService struct {
	geocode   *GeocodeService
	cache     *PriceCache
	guard     *LookupGuard
	gasChain  []priceSource
	elecChain []priceSource
}

func NewPriceService(cfg *config.Config, client *http.Client, cache *PriceCache) *PriceService {
	if client == nil {
		client = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &PriceService{
		geocode: NewGeocodeService(client, cfg.GeocodeBaseURL),
		cache:   cache,
		guard:   NewLookupGuard(),
		gasChain: []priceSource{
			&collectGasSource{client: client, baseURL: cfg.GasAPIBaseURL, apiKey: cfg.GasAPIKey},
			&staticGasSource{},
			&nationalGasSource{},
		},
		elecChain: []priceSource{
			&eiaElectricitySource{client: client, baseURL: cfg.EIABaseURL, apiKey: cfg.EIAAPIKey},
			&staticElectricitySource{},
			&nationalElectricitySource{},
		},
	}
}

// LookupPrices resolves the requested price types for a ZIP code.
// Only a malformed ZIP produces an error besides supersession; any
// upstream failure degrades to a less specific source tier instead.
// clientID scopes the last-request-wins guard to one client (the
// caller's IP or session); independent clients' lookups never discard
// each other. An empty clientID disables the guard.
func (s *PriceService) LookupPrices(ctx context.Context, clientID, zip string, types []models.PriceType) (*models.PriceLookupResult, error) {
	if !utils.IsValidZIP(zip) {
		return nil, ErrInvalidZIP
	}
	if len(types) == 0 {
		types = []models.PriceType{models.PriceTypeGas, models.PriceTypeElectricity}
	}

	var token uint64
	if clientID != "" {
		token = s.guard.Begin(clientID)
	}

	region := models.NationalRegion
	if state, err := s.geocode.StateForZIP(ctx, zip); err != nil {
		log.Printf("Geocode failed for zip %s, using national averages: %v", zip, err)
	} else {
		region = state
	}

	result := &models.PriceLookupResult{
		ZIP:    zip,
		Region: region,
		Prices: make(map[models.PriceType]models.PriceResult, len(types)),
	}

	// Gas and electricity resolve independently, so run them in
	// parallel; each goroutine writes a distinct map key under the
	// mutex.
	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, priceType := range types {
		wg.Add(1)
		go func(pt models.PriceType) {
			defer wg.Done()
			resolved := s.resolvePrice(ctx, pt, region)
			mu.Lock()
			result.Prices[pt] = resolved
			mu.Unlock()
		}(priceType)
	}
	wg.Wait()

	// Last-request-wins: if the same client started a newer lookup
	// while this one was in flight, drop this result on arrival.
	if clientID != "" && !s.guard.Current(clientID, token) {
		return nil, ErrLookupSuperseded
	}

	return result, nil
}

// resolvePrice walks one price type's fallback chain. The chain is
// constructed so its terminal tier always succeeds.
func (s *PriceService) resolvePrice(ctx context.Context, priceType models.PriceType, region string) models.PriceResult {
	cacheKey := string(priceType) + ":" + region
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached
	}

	chain := s.elecChain
	if priceType == models.PriceTypeGas {
		chain = s.gasChain
	}

	for _, source := range chain {
		result, err := source.Resolve(ctx, region)
		if err != nil {
			log.Printf("Price source %q failed for %s/%s: %v", source.Name(region), priceType, region, err)
			continue
		}
		if source.Live() {
			s.cache.Set(cacheKey, result)
		}
		return result
	}

	// Unreachable: the national tier never fails. Kept so the function
	// is total even if a chain is misconfigured.
	log.Printf("All price tiers exhausted for %s/%s", priceType, region)
	var terminal priceSource = &nationalElectricitySource{}
	if priceType == models.PriceTypeGas {
		terminal = &nationalGasSource{}
	}
	result, _ := terminal.Resolve(ctx, region)
	return result
}
