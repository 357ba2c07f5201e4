// Package resilience provides context-aware retry with exponential backoff
// and jitter, used by steps.Retry to re-drive a pipeline continuation.
package resilience
