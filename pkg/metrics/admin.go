package metrics

import "github.com/prometheus/client_golang/prometheus"

// AdminMetrics counts destructive data operations (seed and clear).
type AdminMetrics struct {
	actions *prometheus.CounterVec
}

func NewAdminMetrics(reg prometheus.Registerer) *AdminMetrics {
	if reg == nil {
		return &AdminMetrics{}
	}
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_data_actions_total",
		Help: "Seed and clear operations by outcome.",
	}, []string{"action", "outcome"})
	reg.MustRegister(actions)
	return &AdminMetrics{actions: actions}
}

// Record counts one admin action; err decides the outcome label.
func (m *AdminMetrics) Record(action string, err error) {
	if m == nil || m.actions == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.actions.WithLabelValues(action, outcome).Inc()
}
