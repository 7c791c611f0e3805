package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the process-wide HTTP and SPARQL metrics. All methods are
// safe on a nil receiver so tests can skip registration.
type Metrics struct {
	HTTPRequestDuration *prometheus.HistogramVec
	SPARQLDuration      *prometheus.HistogramVec
	SPARQLFailures      *prometheus.CounterVec
}

// New registers the metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vocprez_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		SPARQLDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vocprez_sparql_query_duration_seconds",
			Help:    "Duration of SPARQL round trips by query form",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 90},
		}, []string{"form"}),
		SPARQLFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vocprez_sparql_query_failures_total",
			Help: "SPARQL calls that failed by query form and reason",
		}, []string{"form", "reason"}),
	}
}

// ObserveHTTPRequest satisfies the request latency middleware.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// ObserveSPARQL records one store round trip. Call with time.Now() at the
// start of the call.
func (m *Metrics) ObserveSPARQL(form string, start time.Time) {
	if m == nil {
		return
	}
	m.SPARQLDuration.WithLabelValues(form).Observe(time.Since(start).Seconds())
}

// IncrementSPARQLFailure counts a failed call; reason is "timeout",
// "transport", "status" or "decode".
func (m *Metrics) IncrementSPARQLFailure(form, reason string) {
	if m == nil {
		return
	}
	m.SPARQLFailures.WithLabelValues(form, reason).Inc()
}
