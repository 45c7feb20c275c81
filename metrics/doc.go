// Package metrics wraps the prometheus.CounterVec/HistogramVec counters
// snapshot_tester reports per run: one counter per flow-algorithm internal
// operation (discharge, global_relabel, update, source_cut, saturate,
// assimilate, pierce) plus the run's flow value and wall-clock duration.
//
// Each run gets its own prometheus.Registry rather than the global default
// registry, grounded in etalazz-vsa's telemetry/churn package (package-level
// counters registered once via MustRegister). Because snapshot_tester is a
// batch CLI, not a long-lived server, readers use Snapshot to pull a single
// gathered value per metric instead of serving /metrics over HTTP.
package metrics
