package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerEnv holds SSH server settings read from the environment.
// Command-line flags take precedence over these values.
type ServerEnv struct {
	Address     string        `env:"CHROMAPULSE_SSH_ADDR" envDefault:":23234"`
	HostKeyPath string        `env:"CHROMAPULSE_HOST_KEY"`
	DBPath      string        `env:"CHROMAPULSE_DB" envDefault:"~/.chromapulse/scores.db"`
	IdleTimeout time.Duration `env:"CHROMAPULSE_IDLE_TIMEOUT" envDefault:"30m"`
}

// LoadServerEnv parses ServerEnv from the process environment.
func LoadServerEnv() (ServerEnv, error) {
	var cfg ServerEnv
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
