package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"sagar88.com.np/internal/content"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	ContentPath     string        `env:"CONTENT_PATH"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"static"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`
	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"40"`
	RateLimitIdle   time.Duration `env:"RATE_LIMIT_IDLE" envDefault:"10m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Content is filled by Load, never by the environment.
	Content *content.Snapshot
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings parses and validates the environment without loading content
func LoadSettings() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load parses the environment and ingests the content file
func Load(logger *slog.Logger) (*Config, error) {
	cfg, err := LoadSettings()
	if err != nil {
		return nil, err
	}

	if err := cfg.LoadContent(logger); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadContent ingests ContentPath, or the built-in content when it is empty
func (c *Config) LoadContent(logger *slog.Logger) error {
	snapshot, err := content.NewLoader(logger).Load(c.ContentPath)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	c.Content = snapshot
	return nil
}

// Validate checks that the settings have usable values
func (c *Config) Validate() error {
	var errs []error
	if c.ServerAddr == "" {
		errs = append(errs, errors.New("config error: SERVER_ADDR must not be empty"))
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, errors.New("config error: RATE_LIMIT_RPS must be non-negative"))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errs = append(errs, errors.New("config error: RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled"))
	}
	if c.RateLimitIdle < 0 {
		errs = append(errs, errors.New("config error: RATE_LIMIT_IDLE must be non-negative"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("config error: SHUTDOWN_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}
