package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config represents service configuration for dp-frontend-ees-dashboard
type Config struct {
	BindAddr                   string            `envconfig:"BIND_ADDR"`
	EESAPIURL                  string            `envconfig:"EES_API_URL"`
	EESAPITimeout              time.Duration     `envconfig:"EES_API_TIMEOUT"`
	RendererURL                string            `envconfig:"RENDERER_URL"`
	GracefulShutdownTimeout    time.Duration     `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration     `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration     `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
	MetadataCacheSize          int               `envconfig:"METADATA_CACHE_SIZE"`
	QueryCacheSize             int               `envconfig:"QUERY_CACHE_SIZE"`
	DefaultGeographicLevels    []string          `envconfig:"DEFAULT_GEOGRAPHIC_LEVELS"`
	FallbackTimePeriodCode     string            `envconfig:"FALLBACK_TIME_PERIOD_CODE"`
	StrictFilters              bool              `envconfig:"STRICT_FILTERS"`
	Datasets                   map[string]string `envconfig:"DATASETS"`
	DatasetTitles              map[string]string `envconfig:"DATASET_TITLES"`
	TaxonomyDomain             string            `envconfig:"TAXONOMY_DOMAIN"`
}

// Get returns the default config with any modifications through environment
// variables
func Get() (cfg *Config, err error) {

	cfg = &Config{
		BindAddr:                   ":28500",
		EESAPIURL:                  "https://api.education.gov.uk/statistics/v1",
		EESAPITimeout:              30 * time.Second,
		RendererURL:                "http://localhost:20010",
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
		MetadataCacheSize:          10,
		QueryCacheSize:             50,
		DefaultGeographicLevels:    []string{"NAT"},
		FallbackTimePeriodCode:     "AY",
		Datasets: map[string]string{
			"ks2-performance": "d32e9901-d5ef-b573-9993-06b9e9ed4e9d",
			"ks4-performance": "18e39901-7fe3-8372-8b2b-33f7ae1e1d12",
			"apprenticeships": "1d419801-a90e-f970-9335-a13623faccbe",
		},
		DatasetTitles: map[string]string{
			"ks2-performance": "KS2 Performance",
			"ks4-performance": "KS4 Performance",
			"apprenticeships": "Apprenticeships",
		},
	}

	if err = envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the values that cannot be sensibly defaulted at runtime
func (cfg *Config) Validate() error {
	if cfg.EESAPIURL == "" {
		return errors.New("EES_API_URL must be set")
	}
	if cfg.EESAPITimeout <= 0 {
		return errors.New("EES_API_TIMEOUT must be positive")
	}
	if cfg.MetadataCacheSize <= 0 {
		return errors.Errorf("METADATA_CACHE_SIZE must be positive, got %d", cfg.MetadataCacheSize)
	}
	if cfg.QueryCacheSize <= 0 {
		return errors.Errorf("QUERY_CACHE_SIZE must be positive, got %d", cfg.QueryCacheSize)
	}
	if len(cfg.DefaultGeographicLevels) == 0 {
		return errors.New("DEFAULT_GEOGRAPHIC_LEVELS must name at least one level")
	}
	return nil
}

// DatasetTitle returns the display title for a dataset key, falling back to the key itself
func (cfg *Config) DatasetTitle(key string) string {
	if title, ok := cfg.DatasetTitles[key]; ok {
		return title
	}
	return key
}
