package history

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
)

// Default configuration values.
const (
	DefaultInitialCapacity  = 128
	DefaultMetricsNamespace = "undotree"
)

type options struct {
	logger          *log.Logger
	versions        VersionSource
	maxEntries      int
	initialCapacity int
	registerer      prometheus.Registerer
	namespace       string
	labels          prometheus.Labels
}

func defaultOptions() options {
	return options{
		logger:          log.New(io.Discard),
		versions:        UUIDVersions{},
		initialCapacity: DefaultInitialCapacity,
		namespace:       DefaultMetricsNamespace,
	}
}

// Option configures a Workspace during creation.
type Option func(*options)

// WithLogger sets the logger used for commit, undo and failure events.
// The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithVersionSource sets the source of version IDs. The default allocates
// UUIDv7 strings.
func WithVersionSource(src VersionSource) Option {
	return func(o *options) {
		if src != nil {
			o.versions = src
		}
	}
}

// WithMaxEntries limits the number of history entries. When a commit
// exceeds the limit the oldest entries are discarded. Zero means no limit.
func WithMaxEntries(max int) Option {
	return func(o *options) {
		if max >= 0 {
			o.maxEntries = max
		}
	}
}

// WithInitialCapacity sets the initial capacity of the entry list.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}

// WithRegisterer enables Prometheus metrics registered on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithMetricsNamespace sets the namespace of the workspace metrics.
func WithMetricsNamespace(ns string) Option {
	return func(o *options) {
		if ns != "" {
			o.namespace = ns
		}
	}
}

// WithMetricsLabels attaches constant labels to the workspace metrics.
// Workspaces sharing one registerer need distinct labels.
func WithMetricsLabels(labels prometheus.Labels) Option {
	return func(o *options) {
		o.labels = labels
	}
}
