package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics covers negotiation, the list cache and the profile registry.
// Methods are no-ops on a nil receiver.
type Metrics struct {
	Negotiations     *prometheus.CounterVec
	CacheLookups     *prometheus.CounterVec
	CacheFills       *prometheus.CounterVec
	RegistryFailures *prometheus.CounterVec
	RegistryProfiles prometheus.Gauge
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Negotiations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vocprez_negotiations_total",
			Help: "Content negotiation outcomes by resource kind, profile and result",
		}, []string{"kind", "profile", "outcome"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vocprez_list_cache_lookups_total",
			Help: "List cache lookups by list and result (hit or miss)",
		}, []string{"list", "result"}),
		CacheFills: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vocprez_list_cache_fills_total",
			Help: "List cache rebuilds from the triplestore by list and status",
		}, []string{"list", "status"}),
		RegistryFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vocprez_profile_registry_failures_total",
			Help: "Failed alternate-profile registry loads by endpoint",
		}, []string{"endpoint"}),
		RegistryProfiles: factory.NewGauge(prometheus.GaugeOpts{
			Name: "vocprez_profile_registry_descriptors",
			Help: "Alternate profile descriptors currently known",
		}),
	}
}

func (m *Metrics) IncrementNegotiation(kind, profile, outcome string) {
	if m == nil {
		return
	}
	m.Negotiations.WithLabelValues(kind, profile, outcome).Inc()
}

func (m *Metrics) IncrementCacheHit(list string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(list, "hit").Inc()
}

func (m *Metrics) IncrementCacheMiss(list string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(list, "miss").Inc()
}

// IncrementCacheFill counts a rebuild; status is "ok" or "error".
func (m *Metrics) IncrementCacheFill(list, status string) {
	if m == nil {
		return
	}
	m.CacheFills.WithLabelValues(list, status).Inc()
}

func (m *Metrics) IncrementRegistryFailure(endpoint string) {
	if m == nil {
		return
	}
	m.RegistryFailures.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) SetRegistryProfiles(n int) {
	if m == nil {
		return
	}
	m.RegistryProfiles.Set(float64(n))
}
