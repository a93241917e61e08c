package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAttendanceEventsCounter(t *testing.T) {
	before := testutil.ToFloat64(AttendanceEvents.WithLabelValues("checkin_request", "success"))
	AttendanceEvents.WithLabelValues("checkin_request", "success").Inc()
	after := testutil.ToFloat64(AttendanceEvents.WithLabelValues("checkin_request", "success"))

	assert.Equal(t, before+1, after)
}

func TestActiveConnectionsGauge(t *testing.T) {
	ActiveConnections.Set(0)
	ActiveConnections.Inc()
	ActiveConnections.Inc()
	ActiveConnections.Dec()

	assert.Equal(t, float64(1), testutil.ToFloat64(ActiveConnections))
}
