// Package tracing is a thin wrapper around OpenTelemetry tracing so that
// the rest of the code-base can instrument allocations without being
// concerned with the underlying implementation.  Applications that do not
// initialise an exporter get no-op spans at negligible cost.
package tracing
