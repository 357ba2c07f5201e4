// Package steps provides reusable building-block steps for flowkit
// pipelines: transformation, filtering, side effects, fan-out, retry,
// validation, and local fault recovery.
//
// Every constructor returns a pipeline.Step; domain-specific behavior stays
// in the supplied functions, the step only decides how the continuation is
// driven.
//
//	p := pipeline.New[*Order](
//	    steps.Validate[*Order](),
//	    steps.Transform(applyTax),
//	    steps.Retry[*Order](resilience.DefaultRetryConfig()),
//	    steps.Tap(publish),
//	)
package steps
