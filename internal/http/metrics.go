package http

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "agencysite"

// Metrics holds the site collectors. It also serves as the project provider's
// Recorder.
type Metrics struct {
	ProviderMode     *prometheus.GaugeVec
	DemotionsTotal   *prometheus.CounterVec
	BackendCalls     *prometheus.CounterVec
	LocalWritesTotal *prometheus.CounterVec
	ProjectCount     prometheus.Gauge
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ContactThrottled prometheus.Counter
}

var providerModes = []string{"loading", "backend_active", "local_fallback"}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		ProviderMode: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "provider_mode",
				Help:      "Active project provider mode (1 for the current mode)",
			},
			[]string{"mode"},
		),
		DemotionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "provider_demotions_total",
				Help:      "Switches from the backend to local storage, by failing operation",
			},
			[]string{"op"},
		),
		BackendCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "backend_calls_total",
				Help:      "Backend project calls by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
		LocalWritesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "local_writes_total",
				Help:      "Writes of the project list to local storage",
			},
			[]string{"outcome"},
		),
		ProjectCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "projects",
				Help:      "Number of projects held by the provider",
			},
		),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "API requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "API request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		ContactThrottled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "contact_throttled_total",
				Help:      "Contact submissions rejected by the per-sender limit",
			},
		),
	}

	reg.MustRegister(
		metrics.ProviderMode,
		metrics.DemotionsTotal,
		metrics.BackendCalls,
		metrics.LocalWritesTotal,
		metrics.ProjectCount,
		metrics.RequestsTotal,
		metrics.RequestDuration,
		metrics.ContactThrottled,
	)

	return metrics
}

func (m *Metrics) SetProviderMode(mode string) {
	for _, known := range providerModes {
		value := 0.0
		if known == mode {
			value = 1
		}
		m.ProviderMode.WithLabelValues(known).Set(value)
	}
}

func (m *Metrics) RecordDemotion(op string) {
	m.DemotionsTotal.WithLabelValues(op).Inc()
}

func (m *Metrics) RecordBackendCall(op, outcome string) {
	m.BackendCalls.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) RecordLocalWrite(outcome string) {
	m.LocalWritesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetProjectCount(n int) {
	m.ProjectCount.Set(float64(n))
}

func (m *Metrics) RecordRequest(route, method string, status int, seconds float64) {
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(seconds)
}

func (m *Metrics) RecordContactThrottled() {
	m.ContactThrottled.Inc()
}
