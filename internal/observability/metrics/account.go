package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AccountRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_requests_total",
			Help: "Total number of account requests",
		},
		[]string{"method", "path"},
	)

	AccountRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "account_requests_in_flight",
			Help: "Number of account requests currently being processed",
		},
	)

	AccountRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "account_request_duration_seconds",
			Help:    "Duration of account requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_registrations_total",
			Help: "Total number of registration attempts by outcome",
		},
		[]string{"outcome"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_logins_total",
			Help: "Total number of login attempts by outcome",
		},
		[]string{"outcome"},
	)

	ProfileLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_profile_lookups_total",
			Help: "Total number of profile lookups by outcome",
		},
		[]string{"outcome"},
	)
)
