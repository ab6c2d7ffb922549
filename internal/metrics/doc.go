// Package metrics provides the observability hooks of the ETL pipeline and the live model.
//
// # Design Philosophy
//
// This package implements the Null Object pattern so that metrics can be collected without
// nil checks throughout the code base. By default every component uses NoopRecorder, whose
// methods do nothing.
//
// # Usage Pattern
//
// Components receive a Recorder through an option:
//
//	pipeline := etl.NewModelETL(req, etl.WithRecorder(recorder))
//
// The CLI activates PrometheusRecorder when a textfile path is configured and writes the
// gathered metrics with WriteTextfile once the command finishes, for the node_exporter
// textfile collector to pick up.
package metrics
