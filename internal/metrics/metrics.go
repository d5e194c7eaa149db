// Package metrics exposes the API's Prometheus metrics on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	evaluations     prometheus.Counter
	onShift         *prometheus.GaugeVec
	scheduleReloads *prometheus.CounterVec
	changeEvents    *prometheus.CounterVec
}

type Option func(*Manager)

func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		m.namespace = namespace
	}
}

func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry replaces the private registry, mostly for tests.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "bay",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	m.evaluations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "dashboard",
		Name:      "evaluations_total",
		Help:      "Total number of on-shift evaluations",
	})

	m.onShift = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: "dashboard",
			Name:      "on_shift",
			Help:      "Number of people on shift at the last evaluation, by role",
		},
		[]string{"role"},
	)

	m.scheduleReloads = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "dashboard",
			Name:      "schedule_reloads_total",
			Help:      "Schedule table reloads by result",
		},
		[]string{"result"},
	)

	m.changeEvents = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "realtime",
			Name:      "change_events_total",
			Help:      "Change notifications published, by collection",
		},
		[]string{"collection"},
	)
}

func (m *Manager) ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, code).Observe(duration.Seconds())
}

func (m *Manager) ObserveEvaluation(result domain.OnShift) {
	m.evaluations.Inc()
	m.onShift.WithLabelValues(string(domain.RoleOperator)).Set(float64(len(result.Operators)))
	m.onShift.WithLabelValues(string(domain.RoleManager)).Set(float64(len(result.Managers)))
}

func (m *Manager) ObserveReload(err error) {
	if err != nil {
		m.scheduleReloads.WithLabelValues("error").Inc()
		return
	}
	m.scheduleReloads.WithLabelValues("ok").Inc()
}

func (m *Manager) ObserveChange(collection string) {
	m.changeEvents.WithLabelValues(collection).Inc()
}

func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
