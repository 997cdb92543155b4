// Package metrics provides Prometheus instrumentation for the HTTP server
// and the record stores. Every collector lives on a dedicated registry so
// tests can create as many instances as they need.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phrazzld/sarisari-api/internal/store"
)

const namespace = "sarisari"

// unmatchedRoute labels requests no route matched, keeping raw paths out
// of the label set.
const unmatchedRoute = "unmatched"

// Metrics holds the collectors and the registry they are registered on.
type Metrics struct {
	Registry *prometheus.Registry

	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route pattern and status code.
	RequestDuration *prometheus.HistogramVec
	// RequestTotal counts all HTTP requests.
	RequestTotal *prometheus.CounterVec
	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight prometheus.Gauge
	// ResponseSize tracks the response body size in bytes.
	ResponseSize *prometheus.HistogramVec
	// StoreDuration tracks record store calls by kind, operation and outcome.
	StoreDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		RequestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		RequestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		ResponseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "response_size_bytes",
				Help:      "Response body sizes in bytes.",
				Buckets:   []float64{100, 1_000, 10_000, 100_000, 1_000_000},
			},
			[]string{"method", "route"},
		),
		StoreDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "operation_duration_seconds",
				Help:      "Duration of record store operations in seconds.",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .5, 1},
			},
			[]string{"kind", "operation", "outcome"},
		),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestTotal,
		m.RequestInFlight,
		m.ResponseSize,
		m.StoreDuration,
	)
	return m
}

// Middleware records duration, count, in-flight and response size for
// every request. Routes are labelled with the chi route pattern, so it must
// be installed on a chi router.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		m.RequestInFlight.Inc()
		defer m.RequestInFlight.Dec()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := routePattern(r)
		code := strconv.Itoa(status)

		m.RequestDuration.WithLabelValues(r.Method, route, code).Observe(time.Since(start).Seconds())
		m.RequestTotal.WithLabelValues(r.Method, route, code).Inc()
		m.ResponseSize.WithLabelValues(r.Method, route).Observe(float64(ww.BytesWritten()))
	})
}

// Handler exposes the registry in the Prometheus text and OpenMetrics formats.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		Registry:          m.Registry,
	})
}

// ObserveStore records one store call:
//
//	defer func() { m.ObserveStore("student", "get", start, err) }()
func (m *Metrics) ObserveStore(kind, operation string, start time.Time, err error) {
	m.StoreDuration.WithLabelValues(kind, operation, outcome(err)).Observe(time.Since(start).Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	case errors.Is(err, store.ErrDuplicate):
		return "duplicate"
	default:
		return "error"
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
