package steps

import (
	"context"

	"github.com/kbukum/flowkit/logger"
	"github.com/kbukum/flowkit/pipeline"
)

// Transform applies fn to the data context and continues with the result.
// A transformation error faults the step without invoking the continuation.
func Transform[T any](fn func(ctx context.Context, data T) (T, error)) pipeline.Step[T] {
	return pipeline.Named("transform", pipeline.StepFunc[T](
		func(ctx context.Context, data T, next pipeline.Next[T]) error {
			out, err := fn(ctx, data)
			if err != nil {
				return err
			}
			return next(ctx, out)
		}))
}

// Tap runs fn for its side effect and continues with the same data.
func Tap[T any](fn func(ctx context.Context, data T) error) pipeline.Step[T] {
	return pipeline.Named("tap", pipeline.StepFunc[T](
		func(ctx context.Context, data T, next pipeline.Next[T]) error {
			if err := fn(ctx, data); err != nil {
				return err
			}
			return next(ctx, data)
		}))
}

// Filter continues only when pred holds; otherwise the pipeline
// short-circuits without a fault.
func Filter[T any](pred func(data T) bool) pipeline.Step[T] {
	return pipeline.Named("filter", pipeline.StepFunc[T](
		func(ctx context.Context, data T, next pipeline.Next[T]) error {
			if !pred(data) {
				return nil
			}
			return next(ctx, data)
		}))
}

// FanOut invokes the continuation once per value produced by split, in the
// order returned. The first branch fault stops remaining branches and is
// raised from the step.
func FanOut[T any](split func(data T) []T) pipeline.Step[T] {
	return pipeline.Named("fan_out", pipeline.StepFunc[T](
		func(ctx context.Context, data T, next pipeline.Next[T]) error {
			for _, branch := range split(data) {
				if err := next(ctx, branch); err != nil {
					return err
				}
			}
			return nil
		}))
}

// Recover absorbs faults raised by downstream steps: it invokes the
// continuation, logs any fault, and completes normally. Recovery local to a
// step, as opposed to the invocation-wide error handler.
func Recover[T any](log *logger.Logger) pipeline.Step[T] {
	return pipeline.Named("recover", pipeline.StepFunc[T](
		func(ctx context.Context, data T, next pipeline.Next[T]) error {
			if err := next(ctx, data); err != nil {
				log.Warn("recovered downstream fault", logger.Fields(
					logger.FieldRunID, pipeline.RunIDFromContext(ctx),
					logger.FieldError, err.Error(),
				))
			}
			return nil
		}))
}
