package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PipelineMetrics records outcomes of analysis runs.
type PipelineMetrics struct {
	stageDuration *prometheus.HistogramVec
	runSuccess    *prometheus.CounterVec
	runFailure    *prometheus.CounterVec
}

// NewPipelineMetrics registers the analysis pipeline metrics on the provided
// registerer. A nil registerer yields a no-op recorder.
func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	if reg == nil {
		return &PipelineMetrics{}
	}
	stageDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analysis_stage_duration_seconds",
		Help:    "Duration of analysis pipeline stages in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})
	runSuccess := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_run_success",
		Help: "Successful analysis runs.",
	}, []string{"trigger"})
	runFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_run_failure",
		Help: "Failed analysis runs.",
	}, []string{"trigger"})
	reg.MustRegister(stageDuration, runSuccess, runFailure)
	return &PipelineMetrics{
		stageDuration: stageDuration,
		runSuccess:    runSuccess,
		runFailure:    runFailure,
	}
}

// ObserveStage records the duration of the named pipeline stage.
func (p *PipelineMetrics) ObserveStage(stage string, duration time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(normalizeLabel(stage)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the given trigger (cli, api).
func (p *PipelineMetrics) IncSuccess(trigger string) {
	if p == nil || p.runSuccess == nil {
		return
	}
	p.runSuccess.WithLabelValues(normalizeLabel(trigger)).Inc()
}

// IncFailure increments the failure counter for the given trigger.
func (p *PipelineMetrics) IncFailure(trigger string) {
	if p == nil || p.runFailure == nil {
		return
	}
	p.runFailure.WithLabelValues(normalizeLabel(trigger)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
