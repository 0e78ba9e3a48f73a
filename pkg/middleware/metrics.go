package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/htmlr/pkg/markup"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "htmlr").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request and render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
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

// WithRegistry sets the Prometheus registry. Metrics are registered once per
// process, so only the registry given to the first Prometheus call is used.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "htmlr",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rendersTotal    *prometheus.CounterVec
	renderDuration  prometheus.Histogram
	liveClients     prometheus.Gauge
	liveMessages    prometheus.Counter
	wsErrors        *prometheus.CounterVec
}

// globalMetrics is created on the first call to Prometheus(). Record*
// functions load it without taking globalMetricsMu.
var (
	globalMetrics   atomic.Pointer[metrics]
	globalMetricsMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests by route and status code",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of markup renders by status and error type",
			ConstLabels: config.ConstLabels,
		}, []string{"status", "error_type"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Markup render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		liveClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_clients",
			Help:        "Number of connected live WebSocket clients",
			ConstLabels: config.ConstLabels,
		}),

		liveMessages: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_messages_total",
			Help:        "Total number of fragments pushed to live clients",
			ConstLabels: config.ConstLabels,
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// Prometheus creates HTTP middleware that collects request metrics.
//
// The metrics are created by the first call and shared by every later call
// and by the Record* functions; options passed to later calls are ignored.
//
// Metrics collected:
//   - htmlr_http_requests_total: Counter of requests by chi route pattern and status code
//   - htmlr_http_request_duration_seconds: Histogram of request duration
//   - htmlr_renders_total: Counter of renders (when RecordRender is called)
//   - htmlr_render_duration_seconds: Histogram of render duration
//   - htmlr_live_clients: Gauge of live clients
//   - htmlr_live_messages_total: Counter of pushed fragments
//   - htmlr_websocket_errors_total: Counter of WebSocket errors
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(middleware.WithNamespace("mysite")))
//	r.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) func(http.Handler) http.Handler {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	m := globalMetrics.Load()
	if m == nil {
		m = initMetrics(config)
		globalMetrics.Store(m)
	}
	globalMetricsMu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := routePattern(r)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
			m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		})
	}
}

// routePattern returns the matched chi route pattern, which keeps label
// cardinality bounded. Unrouted requests share one label.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// categorizeError returns a low-cardinality label for a render error.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, markup.ErrValidation):
		return "validation"
	case errors.Is(err, markup.ErrUnsupportedNode):
		return "unsupported_node"
	default:
		return "internal"
	}
}

// =============================================================================
// Metrics Recording Functions
// =============================================================================

// RecordRender records one render of a document or fragment.
func RecordRender(d time.Duration, err error) {
	m := globalMetrics.Load()
	if m == nil {
		return
	}
	m.renderDuration.Observe(d.Seconds())
	if err != nil {
		m.rendersTotal.WithLabelValues("error", categorizeError(err)).Inc()
		return
	}
	m.rendersTotal.WithLabelValues("success", "").Inc()
}

// RecordLiveConnect records a live client connecting.
func RecordLiveConnect() {
	if m := globalMetrics.Load(); m != nil {
		m.liveClients.Inc()
	}
}

// RecordLiveDisconnect records a live client going away.
func RecordLiveDisconnect() {
	if m := globalMetrics.Load(); m != nil {
		m.liveClients.Dec()
	}
}

// RecordLiveMessages records fragments pushed to live clients.
func RecordLiveMessages(count int) {
	if m := globalMetrics.Load(); m != nil {
		m.liveMessages.Add(float64(count))
	}
}

// RecordWebSocketError records a WebSocket error.
func RecordWebSocketError(errorType string) {
	if m := globalMetrics.Load(); m != nil {
		m.wsErrors.WithLabelValues(errorType).Inc()
	}
}
