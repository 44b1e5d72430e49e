// Package config loads and validates the matfocus configuration file.
//
// Configuration lives at ~/.matfocus/config.yaml. Every field has a
// default, so a missing file is not an error: commands run with defaults
// and only a malformed or invalid file fails loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	// DefaultCacheTTLSeconds is the AI insight cache TTL (24 hours).
	DefaultCacheTTLSeconds = 86400
	// DefaultCarbonPricePerTon is the reference carbon price in $/ton.
	DefaultCarbonPricePerTon = 50.0
	// DefaultHTTPAddr is the insight backend listen address.
	DefaultHTTPAddr = ":8080"
	// DefaultShareBaseURL is the base for shareable comparison links.
	DefaultShareBaseURL = "https://matfocus.example/compare"
)

// configDirName is the directory under the user home.
const configDirName = ".matfocus"

// Validation errors.
var (
	ErrInvalidCacheTTL    = errors.New("cache ttl must be >= 0")
	ErrInvalidCarbonPrice = errors.New("carbon price must be > 0")
	ErrInvalidLogLevel    = errors.New("log level must be one of trace, debug, info, warn, error")
)

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the zerolog level name.
	Level string `yaml:"level" json:"level"`
	// File, when set, receives logs in addition to stderr.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// CacheConfig controls the AI insight cache.
type CacheConfig struct {
	// Enabled toggles caching entirely.
	Enabled bool `yaml:"enabled" json:"enabled"`
	// Directory holds the cache files. Empty means <config dir>/cache.
	Directory string `yaml:"directory,omitempty" json:"directory,omitempty"`
	// TTLSeconds is the entry lifetime.
	TTLSeconds int `yaml:"ttl_seconds" json:"ttl_seconds"`
}

// AIConfig controls the insight provider.
type AIConfig struct {
	// APIKey authenticates against the Gemini API. Usually supplied via
	// the MATFOCUS_AI_API_KEY environment variable instead of the file.
	APIKey string `yaml:"api_key,omitempty" json:"-"`
	// Model overrides the default Gemini model.
	Model string `yaml:"model,omitempty" json:"model,omitempty"`
}

// Config is the full application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Cache   CacheConfig   `yaml:"cache" json:"cache"`
	AI      AIConfig      `yaml:"ai" json:"ai"`

	// CatalogPath points at a user material catalog. Empty uses the
	// embedded sample catalog.
	CatalogPath string `yaml:"catalog_path,omitempty" json:"catalog_path,omitempty"`
	// CarbonPricePerTon overrides the reference carbon price.
	CarbonPricePerTon float64 `yaml:"carbon_price_per_ton" json:"carbon_price_per_ton"`
	// HTTPAddr is the insight backend listen address.
	HTTPAddr string `yaml:"http_addr" json:"http_addr"`
	// ShareBaseURL is the base for shareable links.
	ShareBaseURL string `yaml:"share_base_url" json:"share_base_url"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: DefaultCacheTTLSeconds,
		},
		CarbonPricePerTon: DefaultCarbonPricePerTon,
		HTTPAddr:          DefaultHTTPAddr,
		ShareBaseURL:      DefaultShareBaseURL,
	}
}

// Dir returns the matfocus configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// DefaultPath returns the configuration file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads configuration from path, merging over defaults. An empty path
// resolves to DefaultPath. A missing file returns defaults; a malformed or
// invalid file returns an error. The MATFOCUS_AI_API_KEY environment
// variable overrides the file's API key.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if key := os.Getenv("MATFOCUS_AI_API_KEY"); key != "" {
		cfg.AI.APIKey = key
	}
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCacheTTL, c.Cache.TTLSeconds)
	}
	if c.CarbonPricePerTon <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidCarbonPrice, c.CarbonPricePerTon)
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return nil
}

// CacheDir resolves the cache directory, defaulting under the config dir.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Directory != "" {
		return c.Cache.Directory, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache"), nil
}
