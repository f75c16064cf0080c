package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Notes Metrics
	NotesOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_operations_total",
			Help: "Total number of note operations",
		},
		[]string{"operation"}, // create, update, delete
	)

	// Rating Metrics
	RatingsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratings_submitted_total",
			Help: "Total number of rating submissions",
		},
		[]string{"outcome"}, // created, updated, rejected
	)

	// Reputation Metrics
	ReputationAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reputation_adjustments_total",
			Help: "Total number of reputation adjustments applied",
		},
		[]string{"event"},
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status", "type"}, // success/failure, login/register
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by component",
		},
		[]string{"component", "kind"},
	)
)

// TrackDBOperation returns a timer for a database operation; callers defer
// ObserveDuration.
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

func TrackError(component, kind string) {
	ErrorsTotal.WithLabelValues(component, kind).Inc()
}

func TrackAuthAttempt(status, authType string) {
	AuthAttempts.WithLabelValues(status, authType).Inc()
}

func TrackRatingSubmission(outcome string) {
	RatingsSubmittedTotal.WithLabelValues(outcome).Inc()
}

func TrackReputationAdjustment(event string) {
	ReputationAdjustmentsTotal.WithLabelValues(event).Inc()
}
