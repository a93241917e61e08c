package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_safekids_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_safekids_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_safekids_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// AttendanceEvents tracks check-in/check-out transitions
	AttendanceEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_safekids_attendance_events_total",
			Help: "Number of check-in and check-out events",
		},
		[]string{"event", "status"},
	)

	// PhotoUploads tracks photo uploads
	PhotoUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_safekids_photo_uploads_total",
			Help: "Number of photo uploads",
		},
		[]string{"folder", "status"},
	)

	// LoginAttempts tracks sign-in attempts
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_safekids_login_attempts_total",
			Help: "Number of sign-in attempts",
		},
		[]string{"status"},
	)

	// ActiveConnections tracks in-flight requests
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_safekids_active_connections",
			Help: "Number of active connections",
		},
	)
)
