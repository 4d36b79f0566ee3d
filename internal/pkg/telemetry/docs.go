// Package telemetry wires tracing and structured logging for the wholesale
// service: the OTLP/HTTP tracer provider, a slog handler that stamps every
// record with the active trace and span ids, and a helper to close spans with
// the outcome of an operation.
package telemetry
