package pipeline

import (
	"context"

	"github.com/kbukum/flowkit/errors"
)

// Cursor drives execution of the remaining pipeline steps. It holds a shared
// immutable step array, an integer position into it, and the error handler for
// the invocation. Advancing is O(1): the continuation for the tail is a new
// cursor over the same array at pos+1.
//
// A cursor never mutates shared state, so a step may invoke the same
// continuation repeatedly or concurrently; each invocation independently
// executes from the same tail.
type Cursor[T any] struct {
	steps   []Step[T]
	pos     int
	handler ErrorHandler[T]
}

// NewCursor creates a cursor over the given steps. The handler is shared by
// every cursor derived from this one; nil means re-raise faults unchanged.
func NewCursor[T any](steps []Step[T], handler ErrorHandler[T]) *Cursor[T] {
	if handler == nil {
		handler = DefaultErrorHandler[T]()
	}
	return &Cursor[T]{steps: steps, handler: handler}
}

// Remaining returns the number of steps this cursor has yet to execute.
func (c *Cursor[T]) Remaining() int {
	return len(c.steps) - c.pos
}

// Invoke executes exactly one step: the head of the remaining sequence. The
// step receives the continuation for the tail and is responsible for invoking
// it (or not). An exhausted cursor is terminal and Invoke is a no-op.
//
// A fault raised by the step is caught here and routed to the error handler
// together with the data context and the continuation the step would have
// used; the handler's outcome is the outcome of this invocation.
func (c *Cursor[T]) Invoke(ctx context.Context, data T) error {
	if c.pos >= len(c.steps) {
		return nil
	}

	current := c.steps[c.pos]
	tail := &Cursor[T]{steps: c.steps, pos: c.pos + 1, handler: c.handler}

	err := runStep(ctx, current, data, tail.Invoke)
	if err == nil {
		return nil
	}
	return c.handler(ctx, err, data, tail.Invoke)
}

// runStep executes one step behind an explicit recover boundary so that a
// panicking step still reaches the error handler, keeping resume semantics
// available.
func runStep[T any](ctx context.Context, step Step[T], data T, next Next[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.StepPanic(StepName(step), r)
		}
	}()
	return step.Run(ctx, data, next)
}
