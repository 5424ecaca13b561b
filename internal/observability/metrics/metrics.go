package metrics

import "github.com/prometheus/client_golang/prometheus"

// EstimateMetrics exposes counters for pricing, hand-off and scheduling flows.
type EstimateMetrics struct {
	computedTotal    *prometheus.CounterVec
	handoffTotal     *prometheus.CounterVec
	submissionsTotal *prometheus.CounterVec
}

func NewEstimateMetrics(reg prometheus.Registerer) *EstimateMetrics {
	m := &EstimateMetrics{
		computedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sqv",
			Subsystem: "estimate",
			Name:      "computed_total",
			Help:      "Total estimates computed, by page",
		}, []string{"page"}),
		handoffTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sqv",
			Subsystem: "handoff",
			Name:      "operations_total",
			Help:      "Hand-off store operations by outcome",
		}, []string{"op", "outcome"}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sqv",
			Subsystem: "schedule",
			Name:      "submissions_total",
			Help:      "Scheduling submissions by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.computedTotal, m.handoffTotal, m.submissionsTotal)
	return m
}

func (m *EstimateMetrics) ObserveComputed(page string) {
	if m == nil {
		return
	}
	m.computedTotal.WithLabelValues(page).Inc()
}

// ObserveHandoff records a save or load. Outcomes used: "ok", "miss",
// "fallback", "error".
func (m *EstimateMetrics) ObserveHandoff(op, outcome string) {
	if m == nil {
		return
	}
	m.handoffTotal.WithLabelValues(op, outcome).Inc()
}

func (m *EstimateMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}
