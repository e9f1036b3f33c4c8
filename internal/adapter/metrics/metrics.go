package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for the limit workflow.
type Metrics struct {
	registry *prometheus.Registry

	// Successful transitions by event kind
	Transitions *prometheus.CounterVec

	// Rejected operations by action and error code
	Failures *prometheus.CounterVec

	// HTTP request latency by route and status
	RequestLatency *prometheus.HistogramVec
}

var _ ports.WorkflowMetrics = (*Metrics)(nil)

// New registers every metric on a private registry. The pending gauge reads
// the approval queue at scrape time.
func New(queue ports.ApprovalQueue) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clm_workflow_transitions_total",
			Help: "Total successful registry transitions by kind",
		}, []string{"kind"}),

		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clm_workflow_failures_total",
			Help: "Total rejected workflow operations by action and error code",
		}, []string{"action", "code"}),

		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clm_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route", "status"}),
	}

	if queue != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "clm_pending_requests",
			Help: "Number of records awaiting a checker decision",
		}, func() float64 {
			return float64(queue.Count(context.Background()))
		})
	}

	return m
}

// ObserveTransition records a committed transition.
func (m *Metrics) ObserveTransition(kind domain.EventKind) {
	if m != nil {
		m.Transitions.WithLabelValues(string(kind)).Inc()
	}
}

// ObserveFailure records a rejected operation.
func (m *Metrics) ObserveFailure(action domain.Action, code string) {
	if m != nil {
		m.Failures.WithLabelValues(string(action), code).Inc()
	}
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
	}
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
