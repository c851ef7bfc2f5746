package undotree

import (
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dshills/undotree/internal/engine/history"
)

// Option configures a Workspace during creation.
type Option = history.Option

// WithLogger sets the workspace logger.
func WithLogger(logger *log.Logger) Option {
	return history.WithLogger(logger)
}

// WithVersionSource sets the source of version IDs.
func WithVersionSource(src VersionSource) Option {
	return history.WithVersionSource(src)
}

// WithMaxEntries limits the number of history entries. Zero means no limit.
func WithMaxEntries(max int) Option {
	return history.WithMaxEntries(max)
}

// WithInitialCapacity sets the initial capacity of the history.
func WithInitialCapacity(n int) Option {
	return history.WithInitialCapacity(n)
}

// WithRegisterer enables Prometheus metrics registered on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return history.WithRegisterer(reg)
}

// WithMetricsNamespace sets the metrics namespace.
func WithMetricsNamespace(ns string) Option {
	return history.WithMetricsNamespace(ns)
}

// WithMetricsLabels attaches constant labels to the workspace metrics.
func WithMetricsLabels(labels prometheus.Labels) Option {
	return history.WithMetricsLabels(labels)
}
