package server

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the easel server configuration.
type Config struct {
	// Address to listen on (e.g., ":8080")
	ListenAddr string `toml:"listen_addr"`

	// Base URL of the upstream chat-completion API
	BaseURL string `toml:"base_url"`

	// API key for the upstream provider
	APIKey string `toml:"api_key"`

	// Debug enables debug-level logging
	Debug bool `toml:"debug"`

	// JSONLogs switches log output to JSON
	JSONLogs bool `toml:"json_logs"`
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() Config {
	return Config{
		ListenAddr: ":8080",
		BaseURL:    "https://api.openai.com/v1",
	}
}

// LoadConfig reads a TOML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}
