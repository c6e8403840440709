package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"go.uber.org/zap/zapcore"
)

// Config holds all server configuration loaded from environment variables.
type Config struct {
	ListenAddr      string        `env:"LISTEN_ADDR" envDefault:":8000"`               // HTTP listen address
	GRPCAddr        string        `env:"GRPC_ADDR"`                                    // gRPC health listen address, empty disables it
	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","` // Allowed CORS origins
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`                  // debug, info, warn, error
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`                 // json or console
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`            // Graceful shutdown budget
	FeedBuffer      int           `env:"FEED_BUFFER" envDefault:"64"`                  // Per-subscriber trade feed buffer
}

// Load reads configuration from environment variables, falling back to
// defaults, and rejects values the server cannot run with.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: want json or console", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %s: must be positive", c.ShutdownTimeout)
	}
	if c.FeedBuffer <= 0 {
		return fmt.Errorf("invalid FEED_BUFFER %d: must be positive", c.FeedBuffer)
	}
	return nil
}
