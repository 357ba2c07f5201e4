// Package errors provides structured error handling for flowkit pipelines.
// It implements error types with machine-readable codes, wrapped causes, and
// retryable detection, so error handlers can inspect faults without string
// matching.
package errors

import (
	"fmt"
)

// AppError is the unified structured error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// StepFailed creates a new AppError for a step that returned an error.
func StepFailed(step string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeStepFailed, Message: fmt.Sprintf("step %s failed", step),
		Retryable: true, Cause: cause,
		Details: map[string]any{"step": step},
	}
}

// StepPanic creates a new AppError for a step that panicked.
// The recovered panic value is preserved in the details.
func StepPanic(step string, recovered any) *AppError {
	return &AppError{
		Code: ErrCodeStepPanic, Message: fmt.Sprintf("step %s panicked: %v", step, recovered),
		Retryable: false,
		Details:   map[string]any{"step": step, "panic": fmt.Sprintf("%v", recovered)},
	}
}

// Aborted creates a new AppError for a pipeline run that was aborted.
func Aborted(reason string) *AppError {
	return &AppError{
		Code: ErrCodeAborted, Message: reason,
		Retryable: false,
	}
}

// Timeout creates a new AppError for an operation that timed out.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("operation %s took too long", operation),
		Retryable: true,
		Details:   map[string]any{"operation": operation},
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		Retryable: false,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("missing required field: %s", field),
		Retryable: false,
		Details:   map[string]any{"field": field},
	}
}
