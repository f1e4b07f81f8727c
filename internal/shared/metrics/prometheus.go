// Package metrics wires the transfer decision engine's observability hooks
// into a caller-owned Prometheus registry. The engine never stands up its
// own /metrics endpoint — it only records into whatever Registerer the
// caller passes in.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives instrumentation events from the decision engine. The
// zero value of Noop satisfies this interface and is the default when no
// recorder is configured, so instrumentation is always optional.
type Recorder interface {
	RecordDecision(incidentType, reasoningCode, action string)
	RecordSolverStatus(status string)
	ObserveDecisionDuration(d time.Duration)
}

// Noop is a Recorder that does nothing. It is the default Recorder so
// Decide never needs a nil check at every call site.
type Noop struct{}

func (Noop) RecordDecision(string, string, string) {}
func (Noop) RecordSolverStatus(string)             {}
func (Noop) ObserveDecisionDuration(time.Duration) {}

// Prometheus is a Recorder backed by github.com/prometheus/client_golang.
// Construct it with NewPrometheus and register it against the registry the
// caller exposes on its own /metrics surface (if any); the engine itself
// never serves HTTP.
type Prometheus struct {
	decisionsTotal    *prometheus.CounterVec
	solverStatusTotal *prometheus.CounterVec
	decisionDuration  *prometheus.HistogramVec
}

// NewPrometheus registers the engine's metrics against reg and returns a
// Recorder. Passing prometheus.NewRegistry() keeps these metrics isolated
// from the process-wide default registry, which is the safer default for a
// library embedded in a larger service.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		decisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfer_decisions_total",
				Help: "Total number of transfer decisions by incident type, reasoning code, and action.",
			},
			[]string{"incident_type", "reasoning_code", "action"},
		),
		solverStatusTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfer_solver_status_total",
				Help: "Total number of MCI/PHE optimizer solves by terminal solver status.",
			},
			[]string{"status"},
		),
		decisionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transfer_decision_duration_seconds",
				Help:    "Wall-clock duration of a single Decide call.",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{},
		),
	}
	reg.MustRegister(p.decisionsTotal, p.solverStatusTotal, p.decisionDuration)
	return p
}

func (p *Prometheus) RecordDecision(incidentType, reasoningCode, action string) {
	p.decisionsTotal.WithLabelValues(incidentType, reasoningCode, action).Inc()
}

func (p *Prometheus) RecordSolverStatus(status string) {
	p.solverStatusTotal.WithLabelValues(status).Inc()
}

func (p *Prometheus) ObserveDecisionDuration(d time.Duration) {
	p.decisionDuration.WithLabelValues().Observe(d.Seconds())
}
