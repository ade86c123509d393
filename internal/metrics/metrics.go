// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Check-in results recorded by CheckIns.
const (
	CheckInFirst   = "checked_in"
	CheckInRepeat  = "already_checked_in"
	CheckInInvalid = "invalid"
)

var (
	// GuestsRegistered counts stored guest registrations.
	GuestsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventcheckin_guests_registered_total",
			Help: "Total number of registered guests",
		},
	)

	// TicketDeliveryFailures counts registrations whose ticket email failed.
	TicketDeliveryFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventcheckin_ticket_delivery_failures_total",
			Help: "Total number of ticket emails that could not be delivered",
		},
	)

	// CheckIns counts check-in attempts by result.
	CheckIns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventcheckin_checkins_total",
			Help: "Total number of check-in attempts",
		},
		[]string{"result"},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventcheckin_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
