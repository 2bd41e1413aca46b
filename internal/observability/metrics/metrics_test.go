package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWidgetMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWidgetMetrics(reg)

	m.ObserveToken("ok")
	m.ObserveToken("ok")
	m.ObserveToken("unauthorized")
	m.ObserveCatalog("ok")
	m.ObserveBooking("ok", 1.5)
	m.SetActiveSessions(3)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.tokenTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.tokenTotal.WithLabelValues("unauthorized")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.catalogTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.bookingsTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.sessionsActive))
}

func TestWidgetMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *WidgetMetrics
	assert.NotPanics(t, func() {
		m.ObserveToken("ok")
		m.ObserveCatalog("ok")
		m.ObserveBooking("failed", 0.1)
		m.SetActiveSessions(0)
	})
}
