package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics holds all Prometheus metrics for the limit order module
type OrderMetrics struct {
	// Lifecycle metrics
	OrdersSubmitted *prometheus.CounterVec
	OrdersCancelled prometheus.Counter
	OrdersExecuted  *prometheus.CounterVec

	// Escrow metrics
	OpenOrders     prometheus.Gauge
	EscrowedOffers *prometheus.GaugeVec

	// Execution metrics
	ExecuteLatency prometheus.Histogram
	ExcessPaid     *prometheus.CounterVec
}

var (
	orderMetricsOnce sync.Once
	orderMetrics     *OrderMetrics
)

// NewOrderMetrics creates and registers limit order metrics (singleton pattern)
func NewOrderMetrics() *OrderMetrics {
	orderMetricsOnce.Do(func() {
		orderMetrics = &OrderMetrics{
			OrdersSubmitted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "limitorder",
					Name:      "orders_submitted_total",
					Help:      "Total number of orders submitted",
				},
				[]string{"offer_asset"},
			),
			OrdersCancelled: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "limitorder",
					Name:      "orders_cancelled_total",
					Help:      "Total number of orders cancelled",
				},
			),
			OrdersExecuted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "limitorder",
					Name:      "orders_executed_total",
					Help:      "Total number of order executions",
				},
				[]string{"status"},
			),
			OpenOrders: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: "limitorder",
					Name:      "open_orders",
					Help:      "Number of currently open orders",
				},
			),
			EscrowedOffers: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: "limitorder",
					Name:      "escrowed_offer_amount",
					Help:      "Offer amounts held in escrow per asset",
				},
				[]string{"offer_asset"},
			),
			ExecuteLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "paw",
					Subsystem: "limitorder",
					Name:      "execute_latency_seconds",
					Help:      "Order execution latency in seconds",
					Buckets:   prometheus.DefBuckets,
				},
			),
			ExcessPaid: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "limitorder",
					Name:      "excess_paid_total",
					Help:      "Total excess return paid out to executors",
				},
				[]string{"ask_asset"},
			),
		}
	})
	return orderMetrics
}

// GetOrderMetrics returns the singleton limit order metrics instance
func GetOrderMetrics() *OrderMetrics {
	if orderMetrics == nil {
		return NewOrderMetrics()
	}
	return orderMetrics
}
