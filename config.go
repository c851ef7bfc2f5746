package undotree

import (
	"io"

	"github.com/dshills/undotree/internal/config"
)

// Config holds workspace settings loaded from a file and the environment.
type Config = config.Config

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return config.Default()
}

// LoadConfig loads the TOML or YAML file at path, applies UNDOTREE_*
// environment overrides and validates the result. A missing file yields
// the defaults.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// FromConfig turns cfg into workspace options. The closer releases the
// log file, if one is configured.
func FromConfig(cfg *Config) ([]Option, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger, closer, err := cfg.Log.NewLogger()
	if err != nil {
		return nil, nil, err
	}

	opts := []Option{
		WithLogger(logger),
		WithVersionSource(cfg.VersionSource()),
		WithMaxEntries(cfg.History.MaxEntries),
		WithInitialCapacity(cfg.History.InitialCapacity),
		WithMetricsNamespace(cfg.Metrics.Namespace),
	}
	return opts, closer, nil
}
