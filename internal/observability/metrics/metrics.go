package metrics

import "github.com/prometheus/client_golang/prometheus"

// WidgetMetrics exposes counters/histograms for the widget API flows.
type WidgetMetrics struct {
	tokenTotal     *prometheus.CounterVec
	catalogTotal   *prometheus.CounterVec
	bookingsTotal  *prometheus.CounterVec
	submitLatency  *prometheus.HistogramVec
	sessionsActive prometheus.Gauge
}

func NewWidgetMetrics(reg prometheus.Registerer) *WidgetMetrics {
	m := &WidgetMetrics{
		tokenTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pawdesk",
			Subsystem: "widget",
			Name:      "token_requests_total",
			Help:      "Total widget token exchange requests",
		}, []string{"status"}),
		catalogTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pawdesk",
			Subsystem: "widget",
			Name:      "catalog_requests_total",
			Help:      "Total service catalog fetches",
		}, []string{"status"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pawdesk",
			Subsystem: "widget",
			Name:      "bookings_total",
			Help:      "Total booking submissions",
		}, []string{"status"}),
		submitLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pawdesk",
			Subsystem: "widget",
			Name:      "booking_submit_latency_seconds",
			Help:      "Latency of booking submissions",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pawdesk",
			Subsystem: "widget",
			Name:      "sessions_active",
			Help:      "Live wizard sessions",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.tokenTotal, m.catalogTotal, m.bookingsTotal, m.submitLatency, m.sessionsActive)
	return m
}

func (m *WidgetMetrics) ObserveToken(status string) {
	if m == nil {
		return
	}
	m.tokenTotal.WithLabelValues(status).Inc()
}

func (m *WidgetMetrics) ObserveCatalog(status string) {
	if m == nil {
		return
	}
	m.catalogTotal.WithLabelValues(status).Inc()
}

func (m *WidgetMetrics) ObserveBooking(status string, seconds float64) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
	m.submitLatency.WithLabelValues(status).Observe(seconds)
}

func (m *WidgetMetrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.sessionsActive.Set(float64(n))
}
