package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementNegotiation("concept", "nvs", "ok")
		m.IncrementCacheHit("collections")
		m.IncrementCacheMiss("collections")
		m.IncrementCacheFill("collections", "ok")
		m.IncrementRegistryFailure("altprof")
		m.SetRegistryProfiles(3)
	})
}

func TestCounters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.IncrementCacheHit("collections")
	m.IncrementCacheHit("collections")
	m.IncrementCacheMiss("conceptschemes")
	m.IncrementNegotiation("concept", "sdo", "ok")
	m.SetRegistryProfiles(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("collections", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("conceptschemes", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Negotiations.WithLabelValues("concept", "sdo", "ok")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.RegistryProfiles))
}
