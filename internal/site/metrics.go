package site

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the render metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "twibbon").
	Namespace string

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the render metrics.
type MetricsOption func(*MetricsConfig)

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics records render counts, failures and latency per target.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderErrors   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderBytes    *prometheus.HistogramVec
}

// NewMetrics registers the render metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := MetricsConfig{
		Namespace: "twibbon",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "renders_total",
			Help:      "Total number of renders by target",
		}, []string{"target"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "render_errors_total",
			Help:      "Total number of failed renders by target",
		}, []string{"target"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "render_duration_seconds",
			Help:      "Render duration in seconds",
			Buckets:   config.Buckets,
		}, []string{"target"}),

		renderBytes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "render_size_bytes",
			Help:      "Size of rendered HTML in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 2, 8),
		}, []string{"target"}),
	}
}

func (m *Metrics) observe(target string, seconds float64, size int, err error) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(target).Inc()
	m.renderDuration.WithLabelValues(target).Observe(seconds)
	if err != nil {
		m.renderErrors.WithLabelValues(target).Inc()
		return
	}
	m.renderBytes.WithLabelValues(target).Observe(float64(size))
}
