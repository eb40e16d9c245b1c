package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CatalogPaths []string // .hcl and .yaml files or directories
	Approve      []string // courses approved before the session starts

	LogFormat string
	LogLevel  string
	CacheSize int
	Color     bool
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.CatalogPaths) == 0 {
		return nil, errors.New("at least one catalog path is required")
	}
	if cfg.CacheSize <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", cfg.CacheSize)
	}
	return &cfg, nil
}
