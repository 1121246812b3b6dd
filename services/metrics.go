package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kadima",
		Name:      "checkouts_total",
		Help:      "Checkout attempts by result.",
	}, []string{"result"})

	paymentStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kadima",
		Name:      "payment_status_updates_total",
		Help:      "Payment status changes by target status.",
	}, []string{"status"})
)
