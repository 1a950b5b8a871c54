// Package metrics holds the Prometheus collectors of the splitter.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for payments, the registry and HTTP.
type Metrics struct {
	// Payment outcomes by result code ("ok" or an error code)
	PaymentOutcome *prometheus.CounterVec

	// Affiliate depth actually paid (0, 1 or 2)
	PaymentDepth prometheus.Histogram

	// Overall MakePayment latency
	PaymentLatency prometheus.Histogram

	// Registry and admin mutations by operation and outcome
	RegistryMutations *prometheus.CounterVec

	// Events dropped by a failing sink
	EventSinkFailures *prometheus.CounterVec

	// HTTP requests by route, method and status
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec
}

// New registers every collector with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PaymentOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "splitter_payments_total",
			Help: "Total payments by outcome",
		}, []string{"outcome"}),

		PaymentDepth: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "splitter_payment_affiliate_depth",
			Help:    "Number of affiliate levels paid per successful payment",
			Buckets: []float64{0, 1, 2},
		}),

		PaymentLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "splitter_payment_duration_seconds",
			Help:    "Duration of payment execution including ledger lookups",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		RegistryMutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "splitter_registry_mutations_total",
			Help: "Registry and admin mutations by operation and outcome",
		}, []string{"operation", "outcome"}),

		EventSinkFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "splitter_event_sink_failures_total",
			Help: "Event batches a sink failed to store",
		}, []string{"sink"}),

		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "splitter_http_requests_total",
			Help: "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),

		HTTPLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "splitter_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// ObservePayment records a payment outcome and its latency.
func (m *Metrics) ObservePayment(outcome string, d time.Duration) {
	if m != nil {
		m.PaymentOutcome.WithLabelValues(outcome).Inc()
		m.PaymentLatency.Observe(d.Seconds())
	}
}

// ObserveDepth records how many affiliate levels a payment paid.
func (m *Metrics) ObserveDepth(levels int) {
	if m != nil {
		m.PaymentDepth.Observe(float64(levels))
	}
}

// IncrementMutation records a registry or admin mutation.
func (m *Metrics) IncrementMutation(operation, outcome string) {
	if m != nil {
		m.RegistryMutations.WithLabelValues(operation, outcome).Inc()
	}
}

// IncrementSinkFailure records a failed sink append.
func (m *Metrics) IncrementSinkFailure(sink string) {
	if m != nil {
		m.EventSinkFailures.WithLabelValues(sink).Inc()
	}
}

// ObserveHTTP records a finished HTTP request.
func (m *Metrics) ObserveHTTP(route, method, status string, d time.Duration) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(route, method, status).Inc()
		m.HTTPLatency.WithLabelValues(route).Observe(d.Seconds())
	}
}

// Outcome maps an error to a low-cardinality label.
func Outcome(code string, err error) string {
	if err == nil {
		return "ok"
	}
	if code == "" {
		return "error"
	}
	return code
}
