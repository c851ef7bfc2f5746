package history

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the counters of one workspace. A nil *metrics records
// nothing.
type metrics struct {
	commits     prometheus.Counter
	undos       prometheus.Counter
	redos       prometheus.Counter
	rollbacks   prometheus.Counter
	external    prometheus.Counter
	corruptions prometheus.Counter
	dropped     prometheus.Counter
	entries     prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer, namespace string, labels prometheus.Labels) *metrics {
	if reg == nil {
		return nil
	}
	f := promauto.With(reg)

	counter := func(name, help string) prometheus.Counter {
		return f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "history",
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	return &metrics{
		commits:     counter("commits_total", "Batches committed as history entries"),
		undos:       counter("undo_total", "Successful undo steps"),
		redos:       counter("redo_total", "Successful redo steps"),
		rollbacks:   counter("rollbacks_total", "Open batches rolled back"),
		external:    counter("external_total", "External ops recorded as robot entries"),
		corruptions: counter("corruptions_total", "Back or forward steps that found unexpected state"),
		dropped:     counter("dropped_total", "Changes made outside a batch and dropped"),
		entries: f.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "history",
			Name:        "entries",
			Help:        "Entries currently held in history",
			ConstLabels: labels,
		}),
	}
}

func (m *metrics) commit() {
	if m != nil {
		m.commits.Inc()
	}
}

func (m *metrics) undo() {
	if m != nil {
		m.undos.Inc()
	}
}

func (m *metrics) redo() {
	if m != nil {
		m.redos.Inc()
	}
}

func (m *metrics) rollback() {
	if m != nil {
		m.rollbacks.Inc()
	}
}

func (m *metrics) externalOp() {
	if m != nil {
		m.external.Inc()
	}
}

func (m *metrics) corruption() {
	if m != nil {
		m.corruptions.Inc()
	}
}

func (m *metrics) drop() {
	if m != nil {
		m.dropped.Inc()
	}
}

func (m *metrics) setEntries(n int) {
	if m != nil {
		m.entries.Set(float64(n))
	}
}
