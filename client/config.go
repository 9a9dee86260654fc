package client

import (
	"fmt"
	"time"

	pkgconfig "github.com/archie46/OpenShop/pkg/config"
)

// Config holds configuration for the OpenShop API client.
type Config struct {
	// BaseURL is the root of the OpenShop backend, without a trailing slash.
	BaseURL string `env:"OPENSHOP_BASE_URL" envDefault:"http://localhost:8080"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Transport tuning.
	Timeout         time.Duration `env:"OPENSHOP_HTTP_TIMEOUT" envDefault:"30s"`
	MaxRetries      int           `env:"OPENSHOP_HTTP_MAX_RETRIES" envDefault:"3"`
	RetryWaitMin    time.Duration `env:"OPENSHOP_HTTP_RETRY_WAIT_MIN" envDefault:"1s"`
	RetryWaitMax    time.Duration `env:"OPENSHOP_HTTP_RETRY_WAIT_MAX" envDefault:"5s"`
	MaxConnsPerHost int           `env:"OPENSHOP_HTTP_MAX_CONNS" envDefault:"100"`

	// Circuit breaker tuning. Breaker is disabled when BreakerEnabled is false.
	BreakerEnabled      bool          `env:"OPENSHOP_BREAKER_ENABLED" envDefault:"true"`
	BreakerInterval     time.Duration `env:"OPENSHOP_BREAKER_INTERVAL" envDefault:"60s"`
	BreakerTimeout      time.Duration `env:"OPENSHOP_BREAKER_TIMEOUT" envDefault:"30s"`
	BreakerFailureRatio float64       `env:"OPENSHOP_BREAKER_FAILURE_RATIO" envDefault:"0.5"`
	BreakerMinRequests  uint32        `env:"OPENSHOP_BREAKER_MIN_REQUESTS" envDefault:"5"`
}

// LoadConfig reads client configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns sensible defaults for local development.
func DefaultConfig() Config {
	return Config{
		BaseURL:             "http://localhost:8080",
		LogLevel:            "info",
		Timeout:             30 * time.Second,
		MaxRetries:          3,
		RetryWaitMin:        time.Second,
		RetryWaitMax:        5 * time.Second,
		MaxConnsPerHost:     100,
		BreakerEnabled:      true,
		BreakerInterval:     60 * time.Second,
		BreakerTimeout:      30 * time.Second,
		BreakerFailureRatio: 0.5,
		BreakerMinRequests:  5,
	}
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries must not be negative: %d", c.MaxRetries)
	}
	if c.BreakerFailureRatio <= 0 || c.BreakerFailureRatio > 1 {
		return fmt.Errorf("breaker failure ratio must be in (0, 1]: %f", c.BreakerFailureRatio)
	}
	return nil
}
