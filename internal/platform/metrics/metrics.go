// Package metrics owns the Prometheus collectors exposed on /metrics.
//
// Collectors live on a Metrics value with its own registry rather than on
// the global default registry, so tests and multiple servers in one
// process do not collide.
package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// countTimeout bounds the store query behind the authors_total gauge.
const countTimeout = 2 * time.Second

// Metrics holds the HTTP and application collectors.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	ResponseSize     *prometheus.HistogramVec
}

// New creates a registry with Go runtime and process collectors plus the
// HTTP request collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		// Buckets cover fast API responses (5ms) up to slow ones (10s).
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),

		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Current number of HTTP requests being served",
			},
		),

		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 8),
			},
			[]string{"method", "path"},
		),
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the HTTP handler for the Prometheus metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterAuthorCount registers the authors_total gauge. count is called
// on every scrape; a failed count is logged and reported as zero.
func (m *Metrics) RegisterAuthorCount(count func(ctx context.Context) (int, error), logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	promauto.With(m.registry).NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "authors_total",
			Help: "Total number of authors in the store",
		},
		func() float64 {
			ctx, cancel := context.WithTimeout(context.Background(), countTimeout)
			defer cancel()

			n, err := count(ctx)
			if err != nil {
				logger.Warn("failed to count authors for metrics", slog.String("error", err.Error()))
				return 0
			}
			return float64(n)
		},
	)
}
