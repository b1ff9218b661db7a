package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

var validate = validator.New()

type AppConfig struct {
	// Dashboard settings passed into the fetch and render steps.
	Weather weather.Settings

	// WeatherAPIURL is the forecast endpoint; tests point it at a local server.
	WeatherAPIURL string `validate:"required,url"`

	// FetchTimeout bounds a single fetch (0 = no timeout).
	FetchTimeout time.Duration `validate:"gte=0"`

	// Outbound rate limit shared by all dashboards.
	FetchRateLimit float64 `validate:"gt=0"`
	FetchRateBurst int     `validate:"gte=1"`

	// Mounted dashboard retention.
	SessionMaxCount int           // max mounted dashboards (0 = unlimited)
	SessionMaxAge   time.Duration // dashboards older than this are unmounted (0 = never)
	SweepInterval   time.Duration `validate:"gt=0"`

	Port string `validate:"required,numeric"`
}

// Load reads configuration from environment with defaults matching the
// original hardcoded dashboard.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{Weather: weather.DefaultSettings()}

	var err error
	loc := &cfg.Weather.Query.Location
	if loc.Lat, err = getenvFloat("WEATHER_LATITUDE", loc.Lat); err != nil {
		return nil, err
	}
	if loc.Lon, err = getenvFloat("WEATHER_LONGITUDE", loc.Lon); err != nil {
		return nil, err
	}
	loc.Name = getenvDefault("WEATHER_PLACE", loc.Name)

	if v := os.Getenv("WEATHER_FIELDS"); v != "" {
		cfg.Weather.Query.Fields = splitList(v)
	}
	cfg.Weather.Locale = getenvDefault("DISPLAY_LOCALE", cfg.Weather.Locale)
	cfg.Weather.Greeting = getenvDefault("DASHBOARD_GREETING", cfg.Weather.Greeting)

	cfg.WeatherAPIURL = getenvDefault("WEATHER_API_URL", providers.DefaultOpenMeteoURL)

	if cfg.FetchTimeout, err = getenvDuration("FETCH_TIMEOUT", "0s"); err != nil {
		return nil, err
	}
	if cfg.FetchRateLimit, err = getenvFloat("FETCH_RATE_LIMIT", 5); err != nil {
		return nil, err
	}
	cfg.FetchRateBurst = getenvInt("FETCH_RATE_BURST", 10)

	cfg.SessionMaxCount = getenvInt("SESSION_MAX_COUNT", 1000)
	if cfg.SessionMaxAge, err = getenvDuration("SESSION_MAX_AGE", "10m"); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = getenvDuration("SWEEP_INTERVAL", "1m"); err != nil {
		return nil, err
	}
	cfg.Port = getenvDefault("PORT", "8080")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and the display locale.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := language.Parse(c.Weather.Locale); err != nil {
		return fmt.Errorf("invalid DISPLAY_LOCALE %q: %w", c.Weather.Locale, err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
