// Package metrics records pipeline activity as Prometheus metrics.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driven"
)

// Ensure PipelineMetrics implements the interface.
var _ driven.PipelineMetrics = (*PipelineMetrics)(nil)

// PipelineMetrics holds the pipeline collectors.
type PipelineMetrics struct {
	stageDuration *prometheus.HistogramVec
	stageErrors   *prometheus.CounterVec
	runs          *prometheus.CounterVec
	runDuration   prometheus.Histogram
}

// NewPipelineMetrics creates the collectors and registers them with reg.
func NewPipelineMetrics(reg prometheus.Registerer) (*PipelineMetrics, error) {
	m := &PipelineMetrics{
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "docproof",
				Name:      "stage_duration_seconds",
				Help:      "Time spent in each pipeline stage.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"stage"},
		),
		stageErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "docproof",
				Name:      "stage_errors_total",
				Help:      "Number of pipeline stages that returned an error.",
			},
			[]string{"stage"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "docproof",
				Name:      "runs_total",
				Help:      "Number of finished pipeline runs by outcome.",
			},
			[]string{"state", "reason"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "docproof",
				Name:      "run_duration_seconds",
				Help:      "End-to-end duration of finished runs.",
				Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
			},
		),
	}

	for _, c := range []prometheus.Collector{m.stageDuration, m.stageErrors, m.runs, m.runDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveStage records one stage. Parsing is instantaneous and only its
// failures are counted.
func (m *PipelineMetrics) ObserveStage(stage domain.RunState, elapsed time.Duration, err error) {
	if elapsed > 0 {
		m.stageDuration.WithLabelValues(stage.String()).Observe(elapsed.Seconds())
	}
	if err != nil {
		m.stageErrors.WithLabelValues(stage.String()).Inc()
	}
}

// ObserveRun records a finished run.
func (m *PipelineMetrics) ObserveRun(run *domain.Run) {
	m.runs.WithLabelValues(run.State.String(), FailureReason(run.Err)).Inc()
	if d := run.Duration(); d > 0 {
		m.runDuration.Observe(d.Seconds())
	}
}

// FailureReason maps a run error onto a low-cardinality label.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, domain.ErrInvalidLink):
		return "invalid_link"
	case errors.Is(err, domain.ErrFetchFailed):
		return "fetch"
	case errors.Is(err, domain.ErrProofreadFailed):
		return "proofread"
	default:
		return "other"
	}
}
