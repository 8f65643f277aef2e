package config

import (
	"fmt"
	"os"
)

// Presenter style names
const (
	StyleFancy = "fancy"
	StylePlain = "plain"
)

// Config holds all configuration for the application
type Config struct {
	UI UIConfig
}

// UIConfig holds presentation configuration
type UIConfig struct {
	// Style selects the presenter: "fancy" (lipgloss panels) or "plain"
	Style string

	// NoColor disables styled output entirely, following the NO_COLOR
	// convention
	NoColor bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		UI: UIConfig{
			Style:   getEnvOrDefault("BUILDRAND_STYLE", StyleFancy),
			NoColor: os.Getenv("NO_COLOR") != "",
		},
	}

	if cfg.UI.Style != StyleFancy && cfg.UI.Style != StylePlain {
		return nil, fmt.Errorf("BUILDRAND_STYLE must be %q or %q, got %q", StyleFancy, StylePlain, cfg.UI.Style)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
