package dev

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsConfig configures the dev server metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "rynex").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: a fresh registry per server.
	Registry *prometheus.Registry
}

// Metrics holds the dev server's Prometheus metrics.
type Metrics struct {
	registry *prometheus.Registry

	rebuildsTotal   *prometheus.CounterVec
	rebuildDuration prometheus.Histogram
	reloadClients   prometheus.Gauge
	reloadsTotal    prometheus.Counter
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the dev server metrics.
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "rynex"
	}
	if config.Buckets == nil {
		config.Buckets = prometheus.DefBuckets
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		registry: config.Registry,

		rebuildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   "dev",
			Name:        "rebuilds_total",
			Help:        "Total number of rebuilds triggered by file changes",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		rebuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   "dev",
			Name:        "rebuild_duration_seconds",
			Help:        "Rebuild duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   "dev",
			Name:        "reload_clients",
			Help:        "Number of browsers connected to the reload channel",
			ConstLabels: config.ConstLabels,
		}),

		reloadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   "dev",
			Name:        "reloads_total",
			Help:        "Total number of reload broadcasts sent to browsers",
			ConstLabels: config.ConstLabels,
		}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   "dev",
			Name:        "requests_total",
			Help:        "Total number of proxied HTTP requests",
			ConstLabels: config.ConstLabels,
		}, []string{"method", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   "dev",
			Name:        "request_duration_seconds",
			Help:        "Proxied HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"method"}),
	}
}

// ObserveRebuild records one rebuild.
func (m *Metrics) ObserveRebuild(success bool, d time.Duration) {
	status := "ok"
	if !success {
		status = "error"
	}
	m.rebuildsTotal.WithLabelValues(status).Inc()
	m.rebuildDuration.Observe(d.Seconds())
}

// SetReloadClients records the current reload client count.
func (m *Metrics) SetReloadClients(n int) {
	m.reloadClients.Set(float64(n))
}

// ObserveReload records one reload broadcast.
func (m *Metrics) ObserveReload() {
	m.reloadsTotal.Inc()
}

// Handler returns the /_rynex/metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// statusRecorder captures the response status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware instruments an HTTP handler with request metrics.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.requestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.code)).Inc()
		m.requestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
