package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/3-lines-studio/multipage/internal/core"
)

// MetricsConfig configures the dev server metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "multipage").
	Namespace string

	// Subsystem is the metrics subsystem (default: "dev").
	Subsystem string

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: a fresh registry, so repeated servers in one process don't collide.
	Registry *prometheus.Registry
}

type MetricsOption func(*MetricsConfig)

func WithRegistry(registry *prometheus.Registry) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "multipage",
		Subsystem: "dev",
		Buckets:   prometheus.DefBuckets,
	}
}

// Metrics counts how the dev server answered page requests. A nil *Metrics
// records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	reloadsTotal    prometheus.Counter
}

func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	if len(config.Buckets) == 0 {
		config.Buckets = prometheus.DefBuckets
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		registry: config.Registry,

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "page_requests_total",
			Help:      "Requests seen by the page middleware, by action",
		}, []string{"action"}),

		errorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "page_errors_total",
			Help:      "Page requests that failed, by error kind",
		}, []string{"kind"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "request_duration_seconds",
			Help:      "Dev server request duration in seconds",
			Buckets:   config.Buckets,
		}, []string{"status"}),

		reloadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "config_reloads_total",
			Help:      "Times the page configuration was reloaded",
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) observeRequest(action core.DevAction) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(action.String()).Inc()
}

func (m *Metrics) observeError(kind string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) observeDuration(status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(status).Observe(seconds)
}

func (m *Metrics) ObserveReload() {
	if m == nil {
		return
	}
	m.reloadsTotal.Inc()
}
