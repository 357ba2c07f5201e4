// Package validation provides struct-tag validation for pipeline data
// contexts, using the validator library.
//
//	type Order struct {
//	    ID    string `validate:"required,uuid"`
//	    Email string `validate:"required,email"`
//	}
//	err := validation.Validate(order)
//
// Validation failures are returned as structured errors with per-field
// details, so pipeline error handlers can inspect them.
package validation
