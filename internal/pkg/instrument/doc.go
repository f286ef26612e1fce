// Package instrument wires tracing, metrics and structured logging.
//
// New returns an OpenTelemetry-backed Instrumentation when enabled and a noop
// one otherwise. Either way the process-wide slog default is replaced by a
// JSON handler that stamps the correlation id and masks sensitive keys.
package instrument
