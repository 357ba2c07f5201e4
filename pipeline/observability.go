package pipeline

import (
	"context"
	"time"

	"github.com/kbukum/flowkit/logger"
	"github.com/kbukum/flowkit/observability"
)

// WithTracing wraps a Step with OpenTelemetry span creation.
// Each execution creates a span named "{prefix}.{stepName}".
func WithTracing[T any](step Step[T], prefix string) Step[T] {
	return &tracingStep[T]{inner: step, prefix: prefix}
}

type tracingStep[T any] struct {
	inner  Step[T]
	prefix string
}

func (s *tracingStep[T]) Name() string { return StepName(s.inner) }

func (s *tracingStep[T]) Run(ctx context.Context, data T, next Next[T]) error {
	spanName := s.prefix + "." + StepName(s.inner)
	ctx, span := observability.StartSpan(ctx, spanName)
	defer span.End()

	observability.SetSpanAttribute(ctx, "pipeline.step", StepName(s.inner))
	if id := RunIDFromContext(ctx); id != "" {
		observability.SetSpanAttribute(ctx, "pipeline.run_id", id)
	}

	err := s.inner.Run(ctx, data, next)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}

	return err
}

// WithMetrics wraps a Step with metric recording.
// Records execution count, duration, and errors.
func WithMetrics[T any](step Step[T], metrics *observability.Metrics) Step[T] {
	return &metricsStep[T]{inner: step, metrics: metrics}
}

type metricsStep[T any] struct {
	inner   Step[T]
	metrics *observability.Metrics
}

func (s *metricsStep[T]) Name() string { return StepName(s.inner) }

func (s *metricsStep[T]) Run(ctx context.Context, data T, next Next[T]) error {
	start := time.Now()
	err := s.inner.Run(ctx, data, next)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		s.metrics.RecordError(ctx, "run", StepName(s.inner))
	}
	s.metrics.RecordStep(ctx, StepName(s.inner), status, duration)

	return err
}

// WithLogging wraps a Step with execution logging.
// Logs: step name, run ID, duration, and success/error status.
func WithLogging[T any](step Step[T], log *logger.Logger) Step[T] {
	return &loggingStep[T]{inner: step, log: log}
}

type loggingStep[T any] struct {
	inner Step[T]
	log   *logger.Logger
}

func (s *loggingStep[T]) Name() string { return StepName(s.inner) }

func (s *loggingStep[T]) Run(ctx context.Context, data T, next Next[T]) error {
	start := time.Now()
	err := s.inner.Run(ctx, data, next)
	duration := time.Since(start)

	fields := map[string]interface{}{
		logger.FieldStep:     StepName(s.inner),
		logger.FieldRunID:    RunIDFromContext(ctx),
		logger.FieldDuration: duration.Milliseconds(),
	}

	if err != nil {
		fields[logger.FieldError] = err.Error()
		s.log.Error("pipeline step failed", fields)
	} else {
		s.log.Debug("pipeline step completed", fields)
	}

	return err
}
