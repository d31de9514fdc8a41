package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"chargecompare-api/models"
)

// priceSource is one tier of the resolution chain. The resolver tries
// sources in order and stops at the first success; only live sources
// have their results cached.
type priceSource interface {
	// Name is the human-readable source label surfaced to the end user.
	Name(region string) string
	// Live reports whether this source performs network I/O.
	Live() bool
	// Resolve returns prices for the region or an error to let the
	// chain fall through to the next tier.
	Resolve(ctx context.Context, region string) (models.PriceResult, error)
}

// National fallback averages. These terminate both chains: the resolver
// can never return "no data".
const (
	nationalGasRegular     = 3.45
	nationalGasPremium     = 4.15
	nationalElectricityKWh = 0.17
	nationalFastChargeKWh  = 0.42
)

// premiumGasMarkup approximates the premium grade when a source only
// reports regular.
const premiumGasMarkup = 0.70

// ---- Live tier: EIA residential electricity rates ----

// eiaElectricitySource queries the EIA v2 retail-sales API for the
// latest residential electricity rate in a state. Requires an API key;
// without one every Resolve fails and the chain falls through.
type eiaElectricitySource struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

type eiaResponse struct {
	Response struct {
		Data []struct {
			Price float64 `json:"price"`
		} `json:"data"`
	} `json:"response"`
}

func (s *eiaElectricitySource) Name(region string) string {
	return fmt.Sprintf("EIA live data (%s)", region)
}

func (s *eiaElectricitySource) Live() bool { return true }

func (s *eiaElectricitySource) Resolve(ctx context.Context, region string) (models.PriceResult, error) {
	if s.apiKey == "" {
		return models.PriceResult{}, fmt.Errorf("no EIA API key configured")
	}
	if region == models.NationalRegion {
		return models.PriceResult{}, fmt.Errorf("no state to query")
	}

	query := url.Values{}
	query.Set("api_key", s.apiKey)
	query.Set("frequency", "monthly")
	query.Set("data[0]", "price")
	query.Set("facets[stateid][]", region)
	query.Set("facets[sectorid][]", "RES")
	query.Set("sort[0][column]", "period")
	query.Set("sort[0][direction]", "desc")
	query.Set("length", "1")

	reqURL := fmt.Sprintf("%s/electricity/retail-sales/data/?%s", s.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.PriceResult{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.PriceResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.PriceResult{}, fmt.Errorf("EIA returned status %d", resp.StatusCode)
	}

	var parsed eiaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return models.PriceResult{}, fmt.Errorf("failed to decode EIA response: %w", err)
	}
	if len(parsed.Response.Data) == 0 || parsed.Response.Data[0].Price <= 0 {
		return models.PriceResult{}, fmt.Errorf("EIA returned no usable price for %s", region)
	}

	// EIA reports cents per kWh
	return models.PriceResult{
		Regular: parsed.Response.Data[0].Price / 100,
		Premium: nationalFastChargeKWh,
		Source:  s.Name(region),
	}, nil
}

// ---- Live tier: CollectAPI-style state gas prices ----

type collectGasSource struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

type collectGasResponse struct {
	Result struct {
		Gasoline string `json:"gasoline"`
		Premium  string `json:"premium"`
	} `json:"result"`
}

func (s *collectGasSource) Name(region string) string {
	return fmt.Sprintf("Live gas prices (%s)", region)
}

func (s *collectGasSource) Live() bool { return true }

func (s *collectGasSource) Resolve(ctx context.Context, region string) (models.PriceResult, error) {
	if s.apiKey == "" {
		return models.PriceResult{}, fmt.Errorf("no gas API key configured")
	}
	if region == models.NationalRegion {
		return models.PriceResult{}, fmt.Errorf("no state to query")
	}

	stateName, ok := stateNames[region]
	if !ok {
		return models.PriceResult{}, fmt.Errorf("unknown region %q", region)
	}

	reqURL := fmt.Sprintf("%s/stateUsaPrice?state=%s", s.baseURL, url.QueryEscape(stateName))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.PriceResult{}, err
	}
	req.Header.Set("Authorization", "apikey "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.PriceResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.PriceResult{}, fmt.Errorf("gas API returned status %d", resp.StatusCode)
	}

	var parsed collectGasResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return models.PriceResult{}, fmt.Errorf("failed to decode gas API response: %w", err)
	}

	regular, err := strconv.ParseFloat(parsed.Result.Gasoline, 64)
	if err != nil || regular <= 0 {
		return models.PriceResult{}, fmt.Errorf("gas API returned unparseable regular price %q", parsed.Result.Gasoline)
	}

	premium, err := strconv.ParseFloat(parsed.Result.Premium, 64)
	if err != nil || premium <= 0 {
		premium = regular + premiumGasMarkup
	}

	return models.PriceResult{
		Regular: regular,
		Premium: premium,
		Source:  s.Name(region),
	}, nil
}

// ---- Static tier: embedded per-state averages ----

type staticGasSource struct{}

func (s *staticGasSource) Name(region string) string {
	return fmt.Sprintf("State average (%s)", region)
}

func (s *staticGasSource) Live() bool { return false }

func (s *staticGasSource) Resolve(_ context.Context, region string) (models.PriceResult, error) {
	regular, ok := staticGasPrices[region]
	if !ok {
		return models.PriceResult{}, fmt.Errorf("no static gas price for region %q", region)
	}
	return models.PriceResult{
		Regular: regular,
		Premium: regular + premiumGasMarkup,
		Source:  s.Name(region),
	}, nil
}

type staticElectricitySource struct{}

func (s *staticElectricitySource) Name(region string) string {
	return fmt.Sprintf("State average (%s)", region)
}

func (s *staticElectricitySource) Live() bool { return false }

func (s *staticElectricitySource) Resolve(_ context.Context, region string) (models.PriceResult, error) {
	rate, ok := staticElectricityRates[region]
	if !ok {
		return models.PriceResult{}, fmt.Errorf("no static electricity rate for region %q", region)
	}
	return models.PriceResult{
		Regular: rate,
		Premium: nationalFastChargeKWh,
		Source:  s.Name(region),
	}, nil
}

// ---- Terminal tier: hardcoded national averages ----

type nationalGasSource struct{}

func (s *nationalGasSource) Name(string) string { return "National average" }
func (s *nationalGasSource) Live() bool         { return false }

func (s *nationalGasSource) Resolve(context.Context, string) (models.PriceResult, error) {
	return models.PriceResult{
		Regular: nationalGasRegular,
		Premium: nationalGasPremium,
		Source:  s.Name(""),
	}, nil
}

type nationalElectricitySource struct{}

func (s *nationalElectricitySource) Name(string) string { return "National average" }
func (s *nationalElectricitySource) Live() bool         { return false }

func (s *nationalElectricitySource) Resolve(context.Context, string) (models.PriceResult, error) {
	return models.PriceResult{
		Regular: nationalElectricityKWh,
		Premium: nationalFastChargeKWh,
		Source:  s.Name(""),
	}, nil
}

// staticGasPrices holds average regular-grade prices in USD per gallon
// by state, used when live sources are unavailable.
var staticGasPrices = map[string]float64{
	"AL": 3.05, "AK": 3.85, "AZ": 3.45, "AR": 3.00, "CA": 4.85,
	"CO": 3.20, "CT": 3.40, "DE": 3.15, "DC": 3.50, "FL": 3.25,
	"GA": 3.10, "HI": 4.70, "ID": 3.45, "IL": 3.55, "IN": 3.30,
	"IA": 3.10, "KS": 3.05, "KY": 3.10, "LA": 3.00, "ME": 3.35,
	"MD": 3.35, "MA": 3.40, "MI": 3.35, "MN": 3.15, "MS": 2.95,
	"MO": 3.05, "MT": 3.35, "NE": 3.10, "NV": 4.00, "NH": 3.25,
	"NJ": 3.30, "NM": 3.15, "NY": 3.50, "NC": 3.15, "ND": 3.15,
	"OH": 3.25, "OK": 2.95, "OR": 3.90, "PA": 3.55, "RI": 3.35,
	"SC": 3.05, "SD": 3.20, "TN": 3.05, "TX": 3.00, "UT": 3.40,
	"VT": 3.35, "VA": 3.25, "WA": 4.25, "WV": 3.25, "WI": 3.10,
	"WY": 3.25,
}

// staticElectricityRates holds average residential rates in USD per kWh
// by state.
var staticElectricityRates = map[string]float64{
	"AL": 0.147, "AK": 0.235, "AZ": 0.136, "AR": 0.121, "CA": 0.302,
	"CO": 0.144, "CT": 0.291, "DE": 0.152, "DC": 0.165, "FL": 0.145,
	"GA": 0.137, "HI": 0.427, "ID": 0.111, "IL": 0.156, "IN": 0.146,
	"IA": 0.124, "KS": 0.136, "KY": 0.121, "LA": 0.115, "ME": 0.231,
	"MD": 0.169, "MA": 0.295, "MI": 0.181, "MN": 0.140, "MS": 0.128,
	"MO": 0.115, "MT": 0.117, "NE": 0.111, "NV": 0.143, "NH": 0.239,
	"NJ": 0.177, "NM": 0.140, "NY": 0.223, "NC": 0.128, "ND": 0.106,
	"OH": 0.154, "OK": 0.115, "OR": 0.135, "PA": 0.161, "RI": 0.262,
	"SC": 0.139, "SD": 0.122, "TN": 0.122, "TX": 0.146, "UT": 0.111,
	"VT": 0.208, "VA": 0.137, "WA": 0.110, "WV": 0.136, "WI": 0.158,
	"WY": 0.112,
}

// stateNames maps abbreviations to the full names the gas API expects.
var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut",
	"DE": "Delaware", "DC": "Washington DC", "FL": "Florida",
	"GA": "Georgia", "HI": "Hawaii", "ID": "Idaho", "IL": "Illinois",
	"IN": "Indiana", "IA": "Iowa", "KS": "Kansas", "KY": "Kentucky",
	"LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana",
	"NE": "Nebraska", "NV": "Nevada", "NH": "New Hampshire",
	"NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania",
	"RI": "Rhode Island", "SC": "South Carolina", "SD": "South Dakota",
	"TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
	"VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming",
}
