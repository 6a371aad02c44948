package service

import "github.com/workout-tracker/backend/internal/observability/metrics"

func incrementRegistrations(outcome string) {
	metrics.RegistrationsTotal.WithLabelValues(outcome).Inc()
}

func incrementLogins(outcome string) {
	metrics.LoginsTotal.WithLabelValues(outcome).Inc()
}

func incrementProfileLookups(outcome string) {
	metrics.ProfileLookupsTotal.WithLabelValues(outcome).Inc()
}
