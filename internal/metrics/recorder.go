package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// Stage names reported by the ETL pipeline.
const (
	StageExtract = "extract"
	StageLoad    = "load"
)

// Recorder defines observability hooks for pipeline stages and model edits. Implementations
// may forward to Prometheus or collect in memory for tests.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	// IncEdit counts a successful add or remove on a live collection.
	IncEdit(collection, operation string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncEdit(string, string)                     {}

// Result maps an error to its stage result label.
func Result(err error) ResultLabel {
	if err != nil {
		return ResultFailed
	}
	return ResultSuccess
}
