package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Price resolver settings
	EIAAPIKey      string
	GasAPIKey      string
	GeocodeBaseURL string
	EIABaseURL     string
	GasAPIBaseURL  string
	PriceCacheTTL  time.Duration
	HTTPTimeout    time.Duration

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

func Load() *Config {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	smtpPort := getEnvInt("SMTP_PORT", 2525)
	cacheTTLHours := getEnvInt("PRICE_CACHE_TTL_HOURS", 12)
	httpTimeoutSecs := getEnvInt("HTTP_TIMEOUT_SECONDS", 8)

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/chargecompare?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		// External price sources. Keys are optional: without them the
		// resolver skips the live tier and serves static averages.
		EIAAPIKey:      getEnv("EIA_API_KEY", ""),
		GasAPIKey:      getEnv("GAS_API_KEY", ""),
		GeocodeBaseURL: getEnv("GEOCODE_BASE_URL", "https://api.zippopotam.us/us"),
		EIABaseURL:     getEnv("EIA_BASE_URL", "https://api.eia.gov/v2"),
		GasAPIBaseURL:  getEnv("GAS_API_BASE_URL", "https://api.collectapi.com/gasPrice"),
		PriceCacheTTL:  time.Duration(cacheTTLHours) * time.Hour,
		HTTPTimeout:    time.Duration(httpTimeoutSecs) * time.Second,

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@chargecompare.app"),
		FromName:     getEnv("FROM_NAME", "ChargeCompare"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt falls back to the default when the variable is unset,
// malformed, or non-positive; a zero cache TTL would disable caching
// and a zero timeout would remove the bound on external calls.
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
