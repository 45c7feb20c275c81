// Package logging provides the structured logging used across the driver,
// the flow algorithms' verbose traces, and the CLI entrypoints.
//
// It wraps a single *slog.Logger, configurable to emit JSON or text records
// to stdout/stderr or a rotated file via gopkg.in/natefinch/lumberjack.v2,
// mirroring the logger setup in Hola-to-network_logistics_problem's
// pkg/logger package. Callers needing to distinguish concurrent runs in an
// aggregated log stream attach a run ID with WithRunID.
package logging
