package paywatch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "paywatch"

// Watch outcomes reported by paywatch_watches_finished_total.
const (
	outcomeSuccess       = "success"
	outcomeExpired       = "expired"
	outcomeLedgerError   = "ledger_error"
	outcomeDeliveryError = "delivery_error"
	outcomeCanceled      = "canceled"
)

// Notification results reported by paywatch_notifications_total.
const (
	resultDelivered = "delivered"
	resultFailed    = "failed"
)

type metrics struct {
	watchesStarted  prometheus.Counter
	watchesActive   prometheus.Gauge
	watchesFinished *prometheus.CounterVec
	notifications   *prometheus.CounterVec
	scanDuration    prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		watchesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "watches_started_total",
			Help:      "Watches accepted and started.",
		}),
		watchesActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "watches_active",
			Help:      "Watches currently polling the ledger.",
		}),
		watchesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "watches_finished_total",
			Help:      "Watches that stopped, by outcome.",
		}, []string{"outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "notifications_total",
			Help:      "Notification attempts, by snapshot status and result.",
		}, []string{"status", "result"}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "ledger_scan_duration_seconds",
			Help:      "Duration of unspent output scans.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
	}

	reg.MustRegister(
		m.watchesStarted,
		m.watchesActive,
		m.watchesFinished,
		m.notifications,
		m.scanDuration,
	)

	return m
}

func (m *metrics) observeScan(start time.Time) {
	m.scanDuration.Observe(time.Since(start).Seconds())
}

func (m *metrics) observeNotification(status Status, err error) {
	result := resultDelivered
	if err != nil {
		result = resultFailed
	}
	m.notifications.WithLabelValues(status.String(), result).Inc()
}
