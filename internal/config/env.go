package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Environment holds host settings that may come from environment variables.
// CLI flags take precedence when explicitly set.
type Environment struct {
	DBPath     string `env:"STRESSBUSTER_DB"         envDefault:"~/.stressbuster/record.db"`
	ConfigPath string `env:"STRESSBUSTER_CONFIG"`
	FPS        int    `env:"STRESSBUSTER_FPS"        envDefault:"60"`
	Seed       int64  `env:"STRESSBUSTER_SEED"       envDefault:"0"`
	Difficulty string `env:"STRESSBUSTER_DIFFICULTY"`
	LogLevel   string `env:"STRESSBUSTER_LOG_LEVEL"  envDefault:"info"`
	LogFile    string `env:"STRESSBUSTER_LOG_FILE"`
}

// ParseEnv loads host settings from environment variables.
func ParseEnv() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
