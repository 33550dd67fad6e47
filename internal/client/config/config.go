package config

import (
	"fmt"
	"time"

	validator "github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the cvdesk CLI.
//
// Fields:
//   - BaseURL: origin of the CV-desk backend, e.g. "http://127.0.0.1:8000".
//   - StatePath: path of the local SQLite file holding session credentials.
//   - RequestTimeout: per-request bound applied by the HTTP client.
//   - LogLevel: zap level name ("debug", "info", "warn", "error").
type Config struct {
	BaseURL        string        `env:"CVDESK_BASE_URL" validate:"url"`
	StatePath      string        `env:"CVDESK_STATE_PATH" validate:"required"`
	RequestTimeout time.Duration `env:"CVDESK_REQUEST_TIMEOUT" validate:"gt=0"`
	LogLevel       string        `env:"CVDESK_LOG_LEVEL" validate:"loglevel"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000"
	c.StatePath = "cvdesk.db"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is named), environment variables, and
// command-line flags. Later sources take precedence over earlier ones.
// The result is validated before being returned.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func (c *Config) validate() error {
	v := validator.New()
	if err := v.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}
	return v.Struct(c)
}
