package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks the latency of HTTP requests by route
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "yelpcamp_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
			Buckets: []float64{
				0.001, // 1ms
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
			},
		},
		[]string{"method", "route", "status"},
	)

	// RecordChanges counts campground and review writes
	RecordChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yelpcamp_record_changes_total",
			Help: "Number of campground and review records created, updated or deleted",
		},
		[]string{"entity", "operation"},
	)
)

// Entities and operations used as RecordChanges labels
const (
	EntityCampground = "campground"
	EntityReview     = "review"

	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// RecordRequestDuration records the duration of a served request
func RecordRequestDuration(method, route, status string, duration float64) {
	RequestDuration.WithLabelValues(method, route, status).Observe(duration)
}

// RecordChange adds n changes of entity/operation
func RecordChange(entity, operation string, n int) {
	RecordChanges.WithLabelValues(entity, operation).Add(float64(n))
}
