package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string

	ORS struct {
		APIKey  string
		BaseURL string
	}
	Geocoder struct {
		Kind         string // "ors" or "google"
		GoogleAPIKey string
		Timeout      time.Duration
	}
	Weather struct {
		BaseURL  string
		Timeout  time.Duration
		CacheTTL time.Duration
	}
	Fetch struct {
		Concurrency  int
		RouteTimeout time.Duration
		ViaAlong     int
		ViaPerp      int
		ViaSpread    float64
	}

	DatabaseURL string
	// Upper bound on open Postgres connections for the geocode cache.
	DBMaxConns int
	RedisAddr  string
}

// LoadDotEnv reads .env into the process environment. A missing file is not
// an error; it reports whether a file was loaded.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Load reads the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	var err error

	cfg.Port = Get("PORT", "8080")
	cfg.AppEnv = Get("APP_ENV", "development")

	cfg.ORS.APIKey = strings.TrimSpace(os.Getenv("ORS_API_KEY"))
	cfg.ORS.BaseURL = strings.TrimRight(Get("ORS_BASE_URL", "https://api.openrouteservice.org"), "/")

	cfg.Geocoder.Kind = strings.ToLower(Get("GEOCODER", "ors"))
	cfg.Geocoder.GoogleAPIKey = strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY"))
	if cfg.Geocoder.Timeout, err = GetDuration("GEOCODE_TIMEOUT", 8*time.Second); err != nil {
		return Config{}, err
	}

	cfg.Weather.BaseURL = strings.TrimRight(Get("WEATHER_BASE_URL", "https://api.open-meteo.com"), "/")
	if cfg.Weather.Timeout, err = GetDuration("WEATHER_TIMEOUT", 8*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Weather.CacheTTL, err = GetDuration("WEATHER_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}

	if cfg.Fetch.Concurrency, err = GetInt("FETCH_CONCURRENCY", 25); err != nil {
		return Config{}, err
	}
	if cfg.Fetch.RouteTimeout, err = GetDuration("ROUTE_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Fetch.ViaAlong, err = GetInt("VIA_ALONG", 4); err != nil {
		return Config{}, err
	}
	if cfg.Fetch.ViaPerp, err = GetInt("VIA_PERP", 3); err != nil {
		return Config{}, err
	}
	if cfg.Fetch.ViaSpread, err = GetFloat("VIA_SPREAD", 0.35); err != nil {
		return Config{}, err
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DBMaxConns, err = GetInt("DB_MAX_CONNS", 4); err != nil {
		return Config{}, err
	}
	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ORS.APIKey == "" {
		return errors.New("config: ORS_API_KEY is required")
	}
	switch c.Geocoder.Kind {
	case "ors":
	case "google":
		if c.Geocoder.GoogleAPIKey == "" {
			return errors.New("config: GOOGLE_MAPS_API_KEY is required when GEOCODER=google")
		}
	default:
		return fmt.Errorf("config: GEOCODER must be ors or google, got %q", c.Geocoder.Kind)
	}
	if c.Fetch.Concurrency < 1 || c.Fetch.Concurrency > 100 {
		return fmt.Errorf("config: FETCH_CONCURRENCY must be between 1 and 100, got %d", c.Fetch.Concurrency)
	}
	if c.DBMaxConns < 1 || c.DBMaxConns > 50 {
		return fmt.Errorf("config: DB_MAX_CONNS must be between 1 and 50, got %d", c.DBMaxConns)
	}
	if c.Fetch.ViaAlong < 0 || c.Fetch.ViaPerp < 0 {
		return errors.New("config: VIA_ALONG and VIA_PERP must be >= 0")
	}
	if c.Fetch.ViaSpread < 0 || c.Fetch.ViaSpread > 2 {
		return fmt.Errorf("config: VIA_SPREAD must be between 0 and 2, got %v", c.Fetch.ViaSpread)
	}
	if c.Fetch.RouteTimeout <= 0 || c.Weather.Timeout <= 0 || c.Geocoder.Timeout <= 0 {
		return errors.New("config: timeouts must be positive")
	}
	return nil
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
