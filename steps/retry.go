package steps

import (
	"context"

	"github.com/kbukum/flowkit/pipeline"
	"github.com/kbukum/flowkit/resilience"
)

// Retry re-drives the continuation with backoff until it succeeds or the
// attempt budget is exhausted. Downstream steps may therefore run more than
// once per invocation; place Retry only in front of idempotent tails.
func Retry[T any](cfg resilience.RetryConfig) pipeline.Step[T] {
	return pipeline.Named("retry", pipeline.StepFunc[T](
		func(ctx context.Context, data T, next pipeline.Next[T]) error {
			return resilience.RetryFunc(ctx, cfg, func() error {
				return next(ctx, data)
			})
		}))
}
