package pipeline

import (
	"context"
	"fmt"
)

// Next is the continuation handed to a step: invoking it executes the
// remainder of the pipeline with the given data context. A step may call it
// zero, one, or many times, from any goroutine, with the same or a
// transformed value.
type Next[T any] func(ctx context.Context, data T) error

// Step is a unit of pipeline behavior. Run receives the in-flight data
// context and the continuation for the rest of the pipeline. Returning a
// non-nil error (or panicking) routes the fault to the invocation's
// ErrorHandler.
type Step[T any] interface {
	Run(ctx context.Context, data T, next Next[T]) error
}

// StepFunc adapts an ordinary function to the Step interface.
type StepFunc[T any] func(ctx context.Context, data T, next Next[T]) error

// Run calls f(ctx, data, next).
func (f StepFunc[T]) Run(ctx context.Context, data T, next Next[T]) error {
	return f(ctx, data, next)
}

// Namer is implemented by steps that report a stable name. Observability
// decorators use it for span names, log fields, and metric attributes.
type Namer interface {
	Name() string
}

// Named wraps a step with an explicit name.
func Named[T any](name string, step Step[T]) Step[T] {
	return &namedStep[T]{name: name, inner: step}
}

type namedStep[T any] struct {
	name  string
	inner Step[T]
}

func (s *namedStep[T]) Name() string { return s.name }

func (s *namedStep[T]) Run(ctx context.Context, data T, next Next[T]) error {
	return s.inner.Run(ctx, data, next)
}

// StepName returns the step's declared name, falling back to its dynamic type.
func StepName[T any](step Step[T]) string {
	if n, ok := any(step).(Namer); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", step)
}
