package steps

import (
	"context"

	"github.com/kbukum/flowkit/pipeline"
	"github.com/kbukum/flowkit/validation"
)

// Validate checks the data context against its struct tags before
// continuing. A validation failure faults the step with a structured
// INVALID_INPUT error carrying per-field details.
func Validate[T any]() pipeline.Step[T] {
	return pipeline.Named("validate", pipeline.StepFunc[T](
		func(ctx context.Context, data T, next pipeline.Next[T]) error {
			if err := validation.Validate(data); err != nil {
				return err
			}
			return next(ctx, data)
		}))
}
