package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "barber-booking")

	m.ObserveHTTPRequest("GET", "/api/v1/providers/{providerId}/available-slots", "200", 10*time.Millisecond)
	m.ObserveDBQuery("query", time.Millisecond, nil)
	m.ObserveDBQuery("query", time.Millisecond, errors.New("boom"))
	m.ObserveBooking("created")
	m.ObserveBooking("conflict")
	m.ObserveBooking("conflict")
	m.SetDBConnections(5, 2, 3)

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/providers/{providerId}/available-slots", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("query")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.bookingsTotal.WithLabelValues("conflict")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.dbConnections.WithLabelValues("in_use")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", "200", time.Second)
		m.ObserveDBQuery("exec", time.Second, nil)
		m.ObserveBooking("created")
		m.ObserveFreeSlots(3)
		m.SetDBConnections(1, 1, 0)
	})
}
