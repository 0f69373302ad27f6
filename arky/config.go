package arky

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config describes one SDK client instance. There is no process-wide
// configuration; everything a client needs travels in this struct.
type Config struct {
	// BaseURL is the platform API origin, e.g. https://api.arky.io.
	BaseURL string

	// BusinessID scopes every request to one tenant.
	BusinessID string

	// APIKey authenticates server-to-server integrations. Ignored when
	// AccessToken is set.
	APIKey string

	// AccessToken / RefreshToken authenticate user sessions. When the
	// access token expires the client refreshes it transparently.
	AccessToken  string
	RefreshToken string

	// HTTPClient overrides the default client (10s timeout, otel-
	// instrumented transport).
	HTTPClient *http.Client

	Logger    *slog.Logger
	Metrics   *Metrics
	UserAgent string
	Timeout   time.Duration
}

// ConfigFromEnv builds a Config from ARKY_* environment variables.
func ConfigFromEnv() (Config, error) {
	baseURL, err := requiredEnv("ARKY_BASE_URL")
	if err != nil {
		return Config{}, err
	}
	businessID, err := requiredEnv("ARKY_BUSINESS_ID")
	if err != nil {
		return Config{}, err
	}

	return Config{
		BaseURL:      baseURL,
		BusinessID:   businessID,
		APIKey:       env("ARKY_API_KEY", ""),
		AccessToken:  env("ARKY_ACCESS_TOKEN", ""),
		RefreshToken: env("ARKY_REFRESH_TOKEN", ""),
	}, nil
}

func (c Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("arky: BaseURL is required")
	}
	if c.BusinessID == "" {
		return fmt.Errorf("arky: BusinessID is required")
	}
	return nil
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func requiredEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}
