package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for monitoring service health. promauto registers
// them on the default registry at init.
var (
	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eats_orders_created_total",
			Help: "Total number of orders successfully created",
		},
	)

	OrderStatusChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eats_order_status_changes_total",
			Help: "Total number of accepted order status transitions",
		},
		[]string{"status"},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eats_events_published_total",
			Help: "Total number of events published per topic",
		},
		[]string{"topic"},
	)

	EventsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eats_events_dropped_total",
			Help: "Total number of events dropped due to full subscriber buffers",
		},
		[]string{"topic"},
	)

	ActiveSubscriptions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "eats_active_subscriptions",
			Help: "Number of live subscriptions per topic",
		},
		[]string{"topic"},
	)
)
