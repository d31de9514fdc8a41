package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvIntFallsBackOnBadValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"unset", ""},
		{"malformed", "twelve"},
		{"zero", "0"},
		{"negative", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("PRICE_CACHE_TTL_HOURS", tt.value)
			}
			assert.Equal(t, 12, getEnvInt("PRICE_CACHE_TTL_HOURS", 12))
		})
	}
}

func TestGetEnvIntReadsValidValue(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "30")
	assert.Equal(t, 30, getEnvInt("HTTP_TIMEOUT_SECONDS", 8))
}

func TestLoadKeepsDurationsPositiveOnMalformedEnv(t *testing.T) {
	t.Setenv("PRICE_CACHE_TTL_HOURS", "not-a-number")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

	cfg := Load()

	assert.Equal(t, 12*time.Hour, cfg.PriceCacheTTL)
	assert.Equal(t, 8*time.Second, cfg.HTTPTimeout)
}
