package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReconcilePasses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adapproval_reconcile_passes_total",
		Help: "Reconciliation passes by result",
	}, []string{"result"})

	ReconcileListings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adapproval_reconcile_listings_total",
		Help: "Unapproved listings seen by the reconciler, by outcome",
	}, []string{"outcome"})

	ReconcileDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "adapproval_reconcile_pass_duration_seconds",
		Help:    "Wall time of one reconciliation pass",
		Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300},
	})

	PaymentEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adapproval_payment_events_total",
		Help: "Inbound payment events by outcome",
	}, []string{"outcome"})

	ListingsApproved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adapproval_listings_approved_total",
		Help: "Listings that transitioned to approved/active",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adapproval_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adapproval_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "route"})
)
