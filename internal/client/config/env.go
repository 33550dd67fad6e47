package config

import (
	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from a .env file (if present) and the
// process environment. A missing .env file is not an error.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()

	var fromEnv Config
	if err := env.Parse(&fromEnv); err != nil {
		return err
	}

	if fromEnv.BaseURL != "" {
		cfg.BaseURL = fromEnv.BaseURL
	}
	if fromEnv.StatePath != "" {
		cfg.StatePath = fromEnv.StatePath
	}
	if fromEnv.RequestTimeout != 0 {
		cfg.RequestTimeout = fromEnv.RequestTimeout
	}
	if fromEnv.LogLevel != "" {
		cfg.LogLevel = fromEnv.LogLevel
	}
	return nil
}
