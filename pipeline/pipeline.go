package pipeline

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Pipeline holds the ordered step list and is the invocation entry point.
// The zero value is usable; New and Append preserve call order.
type Pipeline[T any] struct {
	mu    sync.Mutex
	steps []Step[T]
}

// New creates a pipeline from zero or more steps, preserving order.
func New[T any](steps ...Step[T]) *Pipeline[T] {
	p := &Pipeline[T]{steps: make([]Step[T], len(steps))}
	copy(p.steps, steps)
	return p
}

// Append adds a step to the end of the pipeline. Duplicates are allowed.
// Invocations already in flight are unaffected: each invocation runs over a
// snapshot taken when it started.
func (p *Pipeline[T]) Append(step Step[T]) {
	p.mu.Lock()
	p.steps = append(p.steps, step)
	p.mu.Unlock()
}

// Len returns the current number of steps.
func (p *Pipeline[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.steps)
}

// InvokeOption configures a single invocation.
type InvokeOption[T any] func(*invokeOptions[T])

type invokeOptions[T any] struct {
	handler ErrorHandler[T]
}

// WithErrorHandler sets the error handler for this invocation. The same
// handler is threaded through every cursor of the run. Without it, faults
// propagate to the caller unchanged.
func WithErrorHandler[T any](h ErrorHandler[T]) InvokeOption[T] {
	return func(o *invokeOptions[T]) { o.handler = h }
}

// Invoke snapshots the current step list, builds a root cursor over it, and
// invokes the cursor with the data context. The returned error is the
// terminal fault of the run, after the error handler has had its say; results
// of execution are otherwise observed via side effects the steps perform.
//
// Invoke never mutates the pipeline and is safe to call concurrently; each
// call is an independent run stamped with its own run ID.
func (p *Pipeline[T]) Invoke(ctx context.Context, data T, opts ...InvokeOption[T]) error {
	var o invokeOptions[T]
	for _, opt := range opts {
		opt(&o)
	}

	p.mu.Lock()
	snapshot := make([]Step[T], len(p.steps))
	copy(snapshot, p.steps)
	p.mu.Unlock()

	ctx = withRunID(ctx, uuid.NewString())
	return NewCursor(snapshot, o.handler).Invoke(ctx, data)
}

// --- Run identity ---

type runIDKey struct{}

func withRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run ID stamped by Invoke, or "" if the context
// does not belong to a pipeline run.
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey{}).(string); ok {
		return id
	}
	return ""
}
