package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "go_hotel",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "go_hotel",
			Name:      "bookings_created_total",
			Help:      "Bookings created.",
		},
	)

	bookingsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "go_hotel",
			Name:      "bookings_cancelled_total",
			Help:      "Bookings cancelled.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingsCancelled)
	})
}

// IncHTTP increments the counter for an endpoint label.
func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

// IncBookingCreated marks one created booking.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncBookingCancelled marks one cancelled booking.
func IncBookingCancelled() {
	bookingsCancelled.Inc()
}
