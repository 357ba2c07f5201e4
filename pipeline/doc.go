// Package pipeline provides a continuation-passing sequential pipeline.
//
// A Pipeline holds an ordered list of steps. Each step receives the in-flight
// data context together with a continuation representing the remainder of the
// pipeline, and decides whether and how to continue: call it once to proceed,
// never to short-circuit, or several times to fan out. This is the middleware
// chain control pattern, generalized over an opaque data context.
//
// Execution is driven by a Cursor: each cursor invocation runs exactly one
// step and hands it a fresh cursor over the tail as its continuation. Faults
// (error returns or panics) are caught at the cursor boundary and routed to a
// per-invocation ErrorHandler, which may swallow the fault, re-raise it, or
// resume the pipeline past the failing step.
//
// # Usage
//
//	p := pipeline.New[*Order](
//	    validateStep,
//	    pricingStep,
//	    persistStep,
//	)
//	err := p.Invoke(ctx, order)
//
// A step that transforms and continues:
//
//	var pricingStep = pipeline.StepFunc[*Order](
//	    func(ctx context.Context, o *Order, next pipeline.Next[*Order]) error {
//	        o.Total = o.Subtotal + o.Tax
//	        return next(ctx, o)
//	    })
//
// Resuming past failures:
//
//	err := p.Invoke(ctx, order,
//	    pipeline.WithErrorHandler(pipeline.LogAndContinue[*Order](log)))
//
// The core performs no I/O, spawns no goroutines, and imposes no suspension
// points; a step may invoke its continuation from any goroutine it chooses.
package pipeline
