// SPDX-License-Identifier: MIT

// Package metrics records classification counters on a private prometheus
// registry and exports them in the text exposition format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/rxnclass/reac"
)

const namespace = "rxnclass"

// Label value for reactions no classifier matched.
const unclassified = "none"

// DurationBuckets cover the wall time of one whole batch, from a single cached
// reaction to a file of thousands.
var DurationBuckets = []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 30, 60, 300}

// Metrics holds the collectors of one run.
type Metrics struct {
	registry *prometheus.Registry

	Classified *prometheus.CounterVec
	Errors     prometheus.Counter
	Duration   prometheus.Histogram
	CacheHits  prometheus.Counter
	CacheMiss  prometheus.Counter
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Classified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reactions_classified_total",
			Help:      "Reactions classified, by reaction class.",
		}, []string{"class"}),
		Errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaction_errors_total",
			Help:      "Reactions rejected as invalid.",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of one classification batch.",
			Buckets:   DurationBuckets,
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Results served from the cache.",
		}),
		CacheMiss: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Results computed because the cache had none.",
		}),
	}
	m.registry.MustRegister(m.Classified, m.Errors, m.Duration, m.CacheHits, m.CacheMiss)
	return m
}

// Registry exposes the registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveBatch counts every item of a finished batch and its duration.
func (m *Metrics) ObserveBatch(items []reac.BatchResult, took time.Duration) {
	for _, it := range items {
		if it.Err != nil {
			m.Errors.Inc()
			continue
		}
		class := unclassified
		if c, ok := it.Result.Class(); ok {
			class = c.String()
		}
		m.Classified.WithLabelValues(class).Inc()
	}
	m.Duration.Observe(took.Seconds())
}

// WriteTextfile writes the current values to path, atomically, in the format
// read by the node exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
