package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GeocodeService resolves a ZIP code to a two-letter state abbreviation
// via a Zippopotam-style postal lookup. Failures are expected and
// non-fatal: callers fall back to the national region.
type GeocodeService struct {
	client  *http.Client
	baseURL string
}

func NewGeocodeService(client *http.Client, baseURL string) *GeocodeService {
	return &GeocodeService{
		client:  client,
		baseURL: baseURL,
	}
}

type zipLookupResponse struct {
	Places []struct {
		State             string `json:"state"`
		StateAbbreviation string `json:"state abbreviation"`
	} `json:"places"`
}

// StateForZIP returns the state abbreviation for a 5-digit ZIP. The ZIP
// must already be format-validated; only the leading 5 digits are sent.
func (s *GeocodeService) StateForZIP(ctx context.Context, zip string) (string, error) {
	if len(zip) > 5 {
		zip = zip[:5]
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", s.baseURL, zip), nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("zip lookup returned status %d", resp.StatusCode)
	}

	var lookup zipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return "", fmt.Errorf("failed to decode zip lookup response: %w", err)
	}

	if len(lookup.Places) == 0 || lookup.Places[0].StateAbbreviation == "" {
		return "", fmt.Errorf("no state found for zip %s", zip)
	}

	return lookup.Places[0].StateAbbreviation, nil
}
