package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all generator settings, populated from environment
// variables. The only runtime switch that is not an environment variable
// is the --update flag on the command line.
type Config struct {
	RegistryPath string // empty selects the embedded dataset
	GeometryPath string
	OutputPath   string

	WikipediaURL string // empty selects the canonical page
	FetchTimeout time.Duration

	MismatchThreshold float64 // fraction of unresolvable counties tolerated
	SimplifyTolerance float64 // Douglas-Peucker tolerance in degrees

	MetricsTextfile string // empty disables the textfile export
	PublishEnabled  bool
	PublishDir      string // git working tree, defaults to the current directory

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	fetchTimeout, err := parseDuration("FETCH_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	threshold, err := parseFloat("MISMATCH_THRESHOLD", 0.2)
	if err != nil {
		return nil, err
	}

	tolerance, err := parseFloat("SIMPLIFY_TOLERANCE", 0.005)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		RegistryPath:      os.Getenv("REGISTRY_PATH"),
		GeometryPath:      envOrDefault("GEOMETRY_PATH", "data/us-counties.geojson"),
		OutputPath:        envOrDefault("OUTPUT_PATH", "dry_counties_map.html"),
		WikipediaURL:      os.Getenv("WIKIPEDIA_URL"),
		FetchTimeout:      fetchTimeout,
		MismatchThreshold: threshold,
		SimplifyTolerance: tolerance,
		MetricsTextfile:   os.Getenv("METRICS_TEXTFILE"),
		PublishEnabled:    os.Getenv("PUBLISH_ENABLED") == "true",
		PublishDir:        envOrDefault("PUBLISH_DIR", "."),
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
		LogFormat:         envOrDefault("LOG_FORMAT", "json"),
	}

	if cfg.GeometryPath == "" {
		return nil, errors.New("GEOMETRY_PATH is required")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OUTPUT_PATH is required")
	}
	if cfg.MismatchThreshold <= 0 || cfg.MismatchThreshold > 1 {
		return nil, errors.New("MISMATCH_THRESHOLD must be in (0, 1]")
	}
	if cfg.SimplifyTolerance < 0 {
		return nil, errors.New("SIMPLIFY_TOLERANCE must not be negative")
	}
	if cfg.FetchTimeout <= 0 {
		return nil, errors.New("FETCH_TIMEOUT must be positive")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
