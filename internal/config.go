package internal

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string `mapstructure:"env" validate:"oneof=dev prod"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Port     uint16 `mapstructure:"port" validate:"gt=0"`

	Store   StoreConfig   `mapstructure:"store"`
	Worker  WorkerConfig  `mapstructure:"worker"`
	NATS    NATSConfig    `mapstructure:"nats"`
	Sentry  SentryConfig  `mapstructure:"sentry"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// WorkerConfig controls the background order progression loop.
type WorkerConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	IntervalSeconds int  `mapstructure:"interval_seconds" validate:"gte=0"`
}

// StoreConfig tunes the storefront engine. Zero values fall back to the
// store package defaults.
type StoreConfig struct {
	TaxRate                float64 `mapstructure:"tax_rate" validate:"gte=0,lte=1"`
	FlatShippingCents      int64   `mapstructure:"flat_shipping_cents" validate:"gte=0"`
	FreeShippingThreshold  int64   `mapstructure:"free_shipping_threshold_cents" validate:"gte=0"`
	GiftWrapFeeCents       int64   `mapstructure:"gift_wrap_fee_cents" validate:"gte=0"`
	SimulatedLatencyMillis int     `mapstructure:"simulated_latency_ms" validate:"gte=0"`
	SearchHistoryLimit     int     `mapstructure:"search_history_limit" validate:"gte=0"`
	Seed                   int64   `mapstructure:"seed"`
}

// NATSConfig controls the optional event bridge. When disabled the store's
// events stay in-process.
type NATSConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	URL           string `mapstructure:"url"`
	SubjectPrefix string `mapstructure:"subject_prefix"`
}

// SentryConfig holds configuration for Sentry error tracking.
type SentryConfig struct {
	DSN         string  `mapstructure:"dsn"`
	Enabled     bool    `mapstructure:"enabled"`
	Environment string  `mapstructure:"environment"`
	Release     string  `mapstructure:"release"`
	SampleRate  float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
}

// NewConfig loads configuration from the environment, after sourcing a .env
// file when one exists.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using environment variables and defaults")
	}

	v := viper.New()
	v.SetEnvPrefix("ESTSTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("port", 3000)

	v.SetDefault("store.tax_rate", 0.08875)
	v.SetDefault("store.flat_shipping_cents", 899)
	v.SetDefault("store.free_shipping_threshold_cents", 7500)
	v.SetDefault("store.gift_wrap_fee_cents", 499)
	v.SetDefault("store.simulated_latency_ms", 0)
	v.SetDefault("store.search_history_limit", 50)
	v.SetDefault("store.seed", 0)

	v.SetDefault("worker.enabled", true)
	v.SetDefault("worker.interval_seconds", 30)

	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.subject_prefix", "eststy")

	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("sentry.release", "")
	v.SetDefault("sentry.sample_rate", 1.0)

	v.SetDefault("metrics.namespace", "eststy")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
