package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once          sync.Once
	stageDuration *prom.HistogramVec
	stageResults  *prom.CounterVec
	edits         *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "pomedit",
			Name:      "stage_duration_seconds",
			Help:      "Duration of ETL stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pomedit",
			Name:      "stage_results_total",
			Help:      "ETL stage result counts by outcome",
		}, []string{"stage", "result"})
		pr.edits = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pomedit",
			Name:      "edits_total",
			Help:      "Live collection edits by collection and operation",
		}, []string{"collection", "operation"})
		reg.MustRegister(pr.stageDuration, pr.stageResults, pr.edits)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncEdit(collection, operation string) {
	if p == nil || p.edits == nil {
		return
	}
	p.edits.WithLabelValues(collection, operation).Inc()
}
