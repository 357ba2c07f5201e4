package pipeline

import (
	"context"
	"sync"

	"github.com/kbukum/flowkit/logger"
)

// ErrorHandler decides the disposition of a fault caught at a cursor
// boundary. It receives the fault, the data context active when the fault
// occurred, and the continuation the failing step would have used. Returning
// nil swallows the fault; returning an error propagates it one level up;
// calling next resumes the pipeline past the failing step.
type ErrorHandler[T any] func(ctx context.Context, err error, data T, next Next[T]) error

// DefaultErrorHandler re-raises every fault unchanged, so an unhandled fault
// propagates synchronously out of Invoke to the caller.
func DefaultErrorHandler[T any]() ErrorHandler[T] {
	return func(_ context.Context, err error, _ T, _ Next[T]) error {
		return err
	}
}

// SwallowErrors discards every fault. The cursor invocation that caught the
// fault completes normally; downstream steps do not run.
func SwallowErrors[T any]() ErrorHandler[T] {
	return func(_ context.Context, _ error, _ T, _ Next[T]) error {
		return nil
	}
}

// ResumeOnError resumes the pipeline past the failing step, continuing with
// the data context that was active when the fault occurred.
func ResumeOnError[T any]() ErrorHandler[T] {
	return func(ctx context.Context, _ error, data T, next Next[T]) error {
		return next(ctx, data)
	}
}

// LogAndContinue logs the fault and resumes the pipeline past the failing
// step.
func LogAndContinue[T any](log *logger.Logger) ErrorHandler[T] {
	return func(ctx context.Context, err error, data T, next Next[T]) error {
		log.Error("pipeline step failed, resuming", logger.Fields(
			logger.FieldRunID, RunIDFromContext(ctx),
			logger.FieldError, err.Error(),
		))
		return next(ctx, data)
	}
}

// CollectErrors appends each fault to dst and swallows it, so one run can
// aggregate partial failures across fan-out branches. Appends are guarded;
// the handler is safe under concurrent continuation invocations.
func CollectErrors[T any](dst *[]error) ErrorHandler[T] {
	var mu sync.Mutex
	return func(_ context.Context, err error, _ T, _ Next[T]) error {
		mu.Lock()
		*dst = append(*dst, err)
		mu.Unlock()
		return nil
	}
}
