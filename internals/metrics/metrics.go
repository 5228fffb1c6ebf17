package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Attendance mengumpulkan metrik presensi. Pointer nil aman dipakai (no-op).
type Attendance struct {
	presenceSignals  *prometheus.CounterVec
	reconcileBatches *prometheus.CounterVec
	reconcileEntries prometheus.Counter
	headcount        prometheus.Gauge
}

func NewAttendance(registerer prometheus.Registerer) *Attendance {
	presenceSignals := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "presensi",
			Subsystem: "device",
			Name:      "signals_total",
			Help:      "Presence signals received, by outcome.",
		},
		[]string{"outcome"},
	)
	registerer.MustRegister(presenceSignals)

	reconcileBatches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "presensi",
			Subsystem: "reconcile",
			Name:      "batches_total",
			Help:      "Reconcile batches submitted, by outcome.",
		},
		[]string{"outcome"},
	)
	registerer.MustRegister(reconcileBatches)

	reconcileEntries := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "presensi", Subsystem: "reconcile", Name: "entries_applied_total",
		Help: "Reconcile entries committed.",
	})
	registerer.MustRegister(reconcileEntries)

	headcount := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "presensi", Subsystem: "headcount", Name: "current",
		Help: "Latest reported headcount.",
	})
	registerer.MustRegister(headcount)

	return &Attendance{
		presenceSignals:  presenceSignals,
		reconcileBatches: reconcileBatches,
		reconcileEntries: reconcileEntries,
		headcount:        headcount,
	}
}

func (m *Attendance) ObservePresence(outcome string) {
	if m == nil {
		return
	}
	m.presenceSignals.WithLabelValues(outcome).Inc()
}

func (m *Attendance) ObserveReconcile(outcome string, applied int) {
	if m == nil {
		return
	}
	m.reconcileBatches.WithLabelValues(outcome).Inc()
	if applied > 0 {
		m.reconcileEntries.Add(float64(applied))
	}
}

func (m *Attendance) SetHeadcount(n int) {
	if m == nil {
		return
	}
	m.headcount.Set(float64(n))
}
