package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/QAddict/ruix/pkg/view"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "ruix").
	Namespace string

	// Subsystem is the metrics subsystem (default: "view").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for pass duration.
	// Default: fine-grained buckets from 10µs to 100ms.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus observer.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "ruix",
		Subsystem: "view",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics records region update passes.
//
// Metrics collected:
//   - ruix_view_render_passes_total: passes by region and strategy
//   - ruix_view_render_duration_seconds: pass duration by region
//   - ruix_view_nodes_total: node operations by region and op
//     (created, reused, moved, removed, evicted)
//   - ruix_view_cache_entries: keyed cache size after the last pass
type Metrics struct {
	passes   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	nodes    *prometheus.CounterVec
	cached   *prometheus.GaugeVec
}

// NewMetrics registers the view metrics and returns an observer feeding
// them. Registering twice on the same registry panics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		passes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_passes_total",
			Help:        "Total number of region update passes",
			ConstLabels: config.ConstLabels,
		}, []string{"region", "strategy"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Region update pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"region"}),

		nodes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_total",
			Help:        "Total node operations performed by region updates",
			ConstLabels: config.ConstLabels,
		}, []string{"region", "op"}),

		cached: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "cache_entries",
			Help:        "Keyed cache size after the last update pass",
			ConstLabels: config.ConstLabels,
		}, []string{"region"}),
	}
}

// RenderStarted implements view.Observer.
func (m *Metrics) RenderStarted(info view.RegionInfo) func(view.RenderStats) {
	start := time.Now()
	region := regionName(info)
	return func(s view.RenderStats) {
		m.passes.WithLabelValues(region, info.Strategy.String()).Inc()
		m.duration.WithLabelValues(region).Observe(time.Since(start).Seconds())
		m.nodes.WithLabelValues(region, "created").Add(float64(s.Created))
		m.nodes.WithLabelValues(region, "reused").Add(float64(s.Reused))
		m.nodes.WithLabelValues(region, "moved").Add(float64(s.Moved))
		m.nodes.WithLabelValues(region, "removed").Add(float64(s.Removed))
		m.nodes.WithLabelValues(region, "evicted").Add(float64(s.Evicted))
		if info.Strategy == view.Keyed {
			m.cached.WithLabelValues(region).Set(float64(s.Cached))
		}
	}
}

func regionName(info view.RegionInfo) string {
	if info.Name == "" {
		return "unnamed"
	}
	return info.Name
}
