// Package metrics exposes prometheus instrumentation for significance
// computations.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics the library records.
type Registry struct {
	// ComputationsTotal counts finished computations by algorithm and
	// outcome ("ok" or "error").
	ComputationsTotal *prometheus.CounterVec
	// ComputationDuration observes wall-clock time per computation.
	ComputationDuration *prometheus.HistogramVec
	// GraphNodes and GraphEdges track the size of the most recently
	// analyzed graph.
	GraphNodes prometheus.Gauge
	GraphEdges prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a Registry backed by its own prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.ComputationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netsig_computations_total",
			Help: "Number of significance computations, by algorithm and status",
		},
		[]string{"algorithm", "status"},
	)

	r.ComputationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netsig_computation_duration_seconds",
			Help:    "Wall-clock duration of significance computations",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		},
		[]string{"algorithm"},
	)

	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netsig_graph_nodes",
			Help: "Node count of the most recently analyzed graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netsig_graph_edges",
			Help: "Edge count of the most recently analyzed graph",
		},
	)

	return r
}

// ObserveComputation records one finished computation.
func (r *Registry) ObserveComputation(algorithm string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.ComputationsTotal.WithLabelValues(algorithm, status).Inc()
	if err == nil {
		r.ComputationDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	}
}

// ObserveGraph records the size of an analyzed graph.
func (r *Registry) ObserveGraph(nodes, edges int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}

// Gatherer returns the underlying prometheus registry for scraping or
// embedding into a caller-owned exposition endpoint.
func (r *Registry) Gatherer() *prometheus.Registry {
	return r.registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// Default returns the library-wide registry.
func Default() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
