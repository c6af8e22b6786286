// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the CLI reads from the environment.
type Config struct {
	// Token authenticates GitHub API calls. Optional; anonymous
	// requests work with a lower rate limit.
	Token string `env:"GITHUB_TOKEN"`
	// DBPath points at the SQLite file backing history and favorites.
	// When empty, state is kept in memory for the process lifetime.
	DBPath string `env:"GITHUB_PROFILE_DB"`
	// Platform namespaces the persisted search history.
	Platform string `env:"GITHUB_PROFILE_PLATFORM" envDefault:"macos"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
