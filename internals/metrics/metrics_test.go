package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAttendance(reg)

	m.ObservePresence("recorded")
	m.ObservePresence("recorded")
	m.ObservePresence("not_found")
	m.ObserveReconcile("applied", 3)
	m.ObserveReconcile("invalid", 0)
	m.SetHeadcount(42)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.presenceSignals.WithLabelValues("recorded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.presenceSignals.WithLabelValues("not_found")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.reconcileEntries))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.headcount))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestNilAttendanceIsNoop(t *testing.T) {
	var m *Attendance
	assert.NotPanics(t, func() {
		m.ObservePresence("recorded")
		m.ObserveReconcile("applied", 1)
		m.SetHeadcount(1)
	})
}
