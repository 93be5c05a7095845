package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientConfig holds settings for the terminal client.
type ClientConfig struct {
	// BaseURL is the habit-keeper server address the client talks to.
	// Env: CLIENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds every API request made by the client.
	// Env: CLIENT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetClientConfig loads the client configuration from environment variables
// and applies defaults for anything unset. The client deliberately skips the
// flag/JSON layers of the server config; a TUI binary is usually launched
// bare.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return nil, err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	return cfg, nil
}
