package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	Verifier VerifierConfig
}

type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether the process runs with production logging and
// gin release mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// VerifierConfig bounds the size of verification requests.
type VerifierConfig struct {
	MaxBodyBytes    int64 `envconfig:"VERIFIER_MAX_BODY_BYTES" default:"1048576"`
	MaxMessageBytes int   `envconfig:"VERIFIER_MAX_MESSAGE_BYTES" default:"65536"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects limits and timeouts that would make the server unusable.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT %d out of range", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_READ_TIMEOUT must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_WRITE_TIMEOUT must be positive"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.Verifier.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("VERIFIER_MAX_BODY_BYTES must be positive"))
	}
	if c.Verifier.MaxMessageBytes <= 0 {
		errs = append(errs, errors.New("VERIFIER_MAX_MESSAGE_BYTES must be positive"))
	}
	if int64(c.Verifier.MaxMessageBytes) > c.Verifier.MaxBodyBytes {
		errs = append(errs, errors.New("VERIFIER_MAX_MESSAGE_BYTES exceeds VERIFIER_MAX_BODY_BYTES"))
	}
	return errors.Join(errs...)
}
