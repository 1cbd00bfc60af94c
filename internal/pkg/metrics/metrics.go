// Package metrics holds the Prometheus collectors shared across the service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics groups the service collectors.
type Metrics struct {
	PollsTotal            prometheus.Counter
	DueRemindersTotal     prometheus.Counter
	AcknowledgementsTotal prometheus.Counter
	InventoryDecrements   *prometheus.CounterVec
	TonesTotal            prometheus.Counter
	AnnouncementsTotal    *prometheus.CounterVec
	ActiveWatchers        prometheus.Gauge

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SuggestionsTotal *prometheus.CounterVec
}

// New registers the collectors with the default registry once and returns them.
//
// Metrics:
//   - medialert_polls_total
//   - medialert_due_reminders_total
//   - medialert_acknowledgements_total
//   - medialert_inventory_decrements_total{result}
//   - medialert_tones_total
//   - medialert_announcements_total{channel,result}
//   - medialert_active_watchers
//   - medialert_http_requests_total{method,endpoint,status}
//   - medialert_http_request_duration_seconds{method,endpoint}
//   - medialert_suggestions_total{result}
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			PollsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "medialert_polls_total",
				Help: "Total number of reminder due-checks",
			}),
			DueRemindersTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "medialert_due_reminders_total",
				Help: "Total number of reminders surfaced as due",
			}),
			AcknowledgementsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "medialert_acknowledgements_total",
				Help: "Total number of acknowledged reminders",
			}),
			InventoryDecrements: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "medialert_inventory_decrements_total",
				Help: "Inventory updates attempted on acknowledgement",
			}, []string{"result"}), // applied, insufficient, no_item, failed
			TonesTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "medialert_tones_total",
				Help: "Total number of alert tones played",
			}),
			AnnouncementsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "medialert_announcements_total",
				Help: "Due reminder announcements sent through outbound channels",
			}, []string{"channel", "result"}),
			ActiveWatchers: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "medialert_active_watchers",
				Help: "Number of per-user reminder watchers running",
			}),
			HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "medialert_http_requests_total",
				Help: "Total HTTP requests",
			}, []string{"method", "endpoint", "status"}),
			HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "medialert_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			}, []string{"method", "endpoint"}),
			SuggestionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "medialert_suggestions_total",
				Help: "Refill suggestion requests",
			}, []string{"result"}),
		}
	})
	return globalMetrics
}
