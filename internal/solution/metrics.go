package solution

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/linnemanlabs/trisolve/internal/triangle"
)

// Metrics holds Prometheus metrics for the solution subsystem.
type Metrics struct {
	SolvesTotal       *prometheus.CounterVec
	SolveDuration     *prometheus.HistogramVec
	LayoutDriftTotal  prometheus.Counter
	ExplanationsTotal *prometheus.CounterVec
}

// NewMetrics registers and returns solution metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SolvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trisolve_solves_total",
			Help: "Total solve requests by case and status.",
		}, []string{"case", "status"}),
		SolveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trisolve_solve_duration_seconds",
			Help:    "Time spent solving and laying out a triangle.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10), // 1µs .. ~262ms
		}, []string{"case"}),
		LayoutDriftTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trisolve_layout_drift_total",
			Help: "Layouts whose projected side a missed the solved value.",
		}),
		ExplanationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trisolve_explanations_total",
			Help: "Explanations generated by explainer and status.",
		}, []string{"explainer", "status"}),
	}

	reg.MustRegister(
		m.SolvesTotal,
		m.SolveDuration,
		m.LayoutDriftTotal,
		m.ExplanationsTotal,
	)

	return m
}

func (m *Metrics) observeSolve(r *Record) {
	if m == nil {
		return
	}
	c := caseLabel(r.Case)
	m.SolvesTotal.WithLabelValues(c, string(r.Status)).Inc()
	m.SolveDuration.WithLabelValues(c).Observe(r.Duration)
	if r.Layout != nil && !r.Layout.Consistent() {
		m.LayoutDriftTotal.Inc()
	}
}

func (m *Metrics) observeExplanation(explainer string, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.ExplanationsTotal.WithLabelValues(explainer, status).Inc()
}

// caseLabel keeps label cardinality bounded when clients send unknown cases.
func caseLabel(c triangle.Case) string {
	if _, err := triangle.ParseCase(string(c)); err != nil {
		return "unknown"
	}
	return string(c)
}
