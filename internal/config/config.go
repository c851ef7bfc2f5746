package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dshills/undotree/internal/config/loader"
	"github.com/dshills/undotree/internal/engine/history"
	"github.com/dshills/undotree/internal/engine/tracking"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "UNDOTREE_"

// Version source names.
const (
	VersionsUUID    = "uuid"
	VersionsCounter = "counter"
)

// Config holds all workspace settings.
type Config struct {
	History HistoryConfig `toml:"history" yaml:"history"`
	Diff    DiffConfig    `toml:"diff" yaml:"diff"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Metrics MetricsConfig `toml:"metrics" yaml:"metrics"`
}

// HistoryConfig configures the history of a workspace.
type HistoryConfig struct {
	// MaxEntries limits the number of entries. Zero means no limit.
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`
	// InitialCapacity is the initial capacity of the entry list.
	InitialCapacity int `toml:"initial_capacity" yaml:"initial_capacity"`
	// Versions selects the version source: "uuid" or "counter".
	Versions string `toml:"versions" yaml:"versions"`
	// VersionPrefix is prepended to counter versions.
	VersionPrefix string `toml:"version_prefix" yaml:"version_prefix"`
}

// DiffConfig configures text diffing.
type DiffConfig struct {
	// MaxMemoryMB limits diff memory. Negative disables the limit.
	MaxMemoryMB int `toml:"max_memory_mb" yaml:"max_memory_mb"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error, fatal.
	Level string `toml:"level" yaml:"level"`
	// File is the log file path. Empty logs to stderr.
	File string `toml:"file" yaml:"file"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `toml:"namespace" yaml:"namespace"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		History: HistoryConfig{
			InitialCapacity: history.DefaultInitialCapacity,
			Versions:        VersionsUUID,
		},
		Diff: DiffConfig{
			MaxMemoryMB: tracking.DefaultMaxDiffMemoryMB,
		},
		Log: LogConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Namespace: history.DefaultMetricsNamespace,
		},
	}
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	fs  loader.FileSystem
	env *loader.EnvLoader
}

// WithFS reads the config file from fsys instead of the OS file system.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnv reads overrides from env instead of the process environment.
// A nil env disables environment overrides.
func WithEnv(env *loader.EnvLoader) Option {
	return func(o *loadOptions) {
		o.env = env
	}
}

// Load resolves the configuration from the defaults, the file at path and
// the environment, then validates it. An empty path or a missing file
// leaves the defaults in place.
func Load(path string, opts ...Option) (*Config, error) {
	o := loadOptions{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(EnvPrefix),
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Default()
	if path != "" {
		l, err := fileLoader(o.fs, path)
		if err != nil {
			return nil, err
		}
		if _, err := l.LoadInto(path, cfg); err != nil {
			return nil, err
		}
	}

	if o.env != nil {
		if err := cfg.applyEnv(o.env.Load()); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fileLoader(fsys loader.FileSystem, path string) (loader.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return loader.NewTOMLLoaderWithFS(fsys), nil
	case ".yaml", ".yml":
		return loader.NewYAMLLoaderWithFS(fsys), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// applyEnv sets the settings named by env paths. Unknown paths are ignored
// so unrelated UNDOTREE_ variables do not break loading.
func (c *Config) applyEnv(values map[string]string) error {
	for path, raw := range values {
		var err error
		switch path {
		case "history.max_entries":
			c.History.MaxEntries, err = parseInt(path, raw)
		case "history.initial_capacity":
			c.History.InitialCapacity, err = parseInt(path, raw)
		case "history.versions":
			c.History.Versions = raw
		case "history.version_prefix":
			c.History.VersionPrefix = raw
		case "diff.max_memory_mb":
			c.Diff.MaxMemoryMB, err = parseInt(path, raw)
		case "log.level":
			c.Log.Level = raw
		case "log.file":
			c.Log.File = raw
		case "metrics.namespace":
			c.Metrics.Namespace = raw
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parseInt(path, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{
			Path:    path,
			Message: "expected an integer",
			Value:   raw,
			Code:    ErrCodeTypeMismatch,
		}
	}
	return n, nil
}

var metricNamePattern = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if c.History.MaxEntries < 0 {
		errs = append(errs, &ValidationError{
			Path:    "history.max_entries",
			Message: "must not be negative",
			Value:   c.History.MaxEntries,
			Code:    ErrCodeOutOfRange,
		})
	}
	if c.History.InitialCapacity <= 0 {
		errs = append(errs, &ValidationError{
			Path:    "history.initial_capacity",
			Message: "must be positive",
			Value:   c.History.InitialCapacity,
			Code:    ErrCodeOutOfRange,
		})
	}
	if c.History.Versions != VersionsUUID && c.History.Versions != VersionsCounter {
		errs = append(errs, &ValidationError{
			Path:    "history.versions",
			Message: "must be uuid or counter",
			Value:   c.History.Versions,
			Code:    ErrCodeInvalidEnum,
		})
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Message: "must be debug, info, warn, error or fatal",
			Value:   c.Log.Level,
			Code:    ErrCodeInvalidEnum,
		})
	}
	if !metricNamePattern.MatchString(c.Metrics.Namespace) {
		errs = append(errs, &ValidationError{
			Path:    "metrics.namespace",
			Message: "must be a valid metric name",
			Value:   c.Metrics.Namespace,
			Code:    ErrCodePatternMismatch,
		})
	}

	return errors.Join(errs...)
}

// DiffOptions returns the text diff options.
func (c *Config) DiffOptions() tracking.DiffOptions {
	return tracking.DiffOptions{MaxMemoryMB: c.Diff.MaxMemoryMB}
}

// VersionSource returns a new version source of the configured kind.
func (c *Config) VersionSource() history.VersionSource {
	if c.History.Versions == VersionsCounter {
		return history.NewCounterVersions(c.History.VersionPrefix)
	}
	return history.UUIDVersions{}
}
