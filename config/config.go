package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration. It is loaded once in cmd and
// passed explicitly into the pipeline; there is no ambient global instance.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Source  SourceConfig  `mapstructure:"source"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Storage StorageConfig `mapstructure:"storage"`
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
}

// SourceConfig holds upstream source configuration
type SourceConfig struct {
	// MirrorURL is the bulk full-history endpoint, the preferred origin
	MirrorURL string `mapstructure:"mirror_url" validate:"required,url"`

	// IncrementalURL is the per-draw endpoint used as the fallback; the draw
	// number is appended as a drawNo query parameter
	IncrementalURL string `mapstructure:"incremental_url" validate:"required,url"`

	// ProbeRadius bounds the fallback window around the highest known draw
	ProbeRadius int `mapstructure:"probe_radius" validate:"gte=0"`
}

// FetchConfig holds HTTP client configuration
type FetchConfig struct {
	MaxAttempts       int           `mapstructure:"max_attempts" validate:"gte=1"`
	BackoffBase       time.Duration `mapstructure:"backoff_base" validate:"gte=0"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second" validate:"gt=0"`
	UserAgent         string        `mapstructure:"user_agent" validate:"required"`
}

// StorageConfig holds dataset persistence configuration
type StorageConfig struct {
	OutputPath string `mapstructure:"output_path" validate:"required"`
}

// Load loads configuration from the environment (and a .env file if present)
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()
	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// App defaults
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.log_level", "info")

	// Source defaults; the endpoint URLs are required and have none
	viper.SetDefault("source.probe_radius", 5)

	// Fetch defaults
	viper.SetDefault("fetch.max_attempts", 5)
	viper.SetDefault("fetch.backoff_base", "600ms")
	viper.SetDefault("fetch.timeout", "10s")
	viper.SetDefault("fetch.requests_per_second", 2.0)
	viper.SetDefault("fetch.user_agent", "lottosync/1.0 (dataset updater)")

	// Storage defaults
	viper.SetDefault("storage.output_path", "data/draws.json")
}

func bindEnvVars() {
	// App
	viper.BindEnv("app.environment", "APP_ENVIRONMENT")
	viper.BindEnv("app.log_level", "LOG_LEVEL")

	// Source
	viper.BindEnv("source.mirror_url", "MIRROR_URL")
	viper.BindEnv("source.incremental_url", "INCREMENTAL_URL")
	viper.BindEnv("source.probe_radius", "PROBE_RADIUS")

	// Fetch
	viper.BindEnv("fetch.max_attempts", "FETCH_MAX_ATTEMPTS")
	viper.BindEnv("fetch.backoff_base", "FETCH_BACKOFF_BASE")
	viper.BindEnv("fetch.timeout", "FETCH_TIMEOUT")
	viper.BindEnv("fetch.requests_per_second", "FETCH_REQUESTS_PER_SECOND")
	viper.BindEnv("fetch.user_agent", "FETCH_USER_AGENT")

	// Storage
	viper.BindEnv("storage.output_path", "OUTPUT_PATH")
}

var validate = validator.New()

func validateConfig(cfg *Config) error {
	// The test environment runs without upstream endpoints configured
	if cfg.App.Environment == "test" {
		return nil
	}

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (cfg *AppConfig) IsDevelopment() bool {
	return cfg.Environment == "development"
}

// IsProduction returns true if the environment is production
func (cfg *AppConfig) IsProduction() bool {
	return cfg.Environment == "production"
}

// Test helpers - only use in tests

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		App: AppConfig{
			Environment: "test",
			LogLevel:    "debug",
		},
		Source: SourceConfig{
			MirrorURL:      "http://localhost/results/all.json",
			IncrementalURL: "http://localhost/draw",
			ProbeRadius:    5,
		},
		Fetch: FetchConfig{
			MaxAttempts:       3,
			BackoffBase:       time.Millisecond,
			Timeout:           time.Second,
			RequestsPerSecond: 1000,
			UserAgent:         "lottosync-test",
		},
		Storage: StorageConfig{
			OutputPath: "draws_test.json",
		},
	}
}
