// Package observability provides OpenTelemetry tracing and metrics wiring
// for flowkit pipelines.
//
// InitTracer and InitMeter configure OTLP HTTP exporters and install global
// providers; StartSpan and the Metrics instrument bundle are thin helpers
// over the global providers, so they degrade to no-ops when no provider has
// been installed (e.g. in tests).
package observability
