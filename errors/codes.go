package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Execution errors
const (
	// ErrCodeStepFailed indicates a pipeline step returned an error.
	ErrCodeStepFailed ErrorCode = "STEP_FAILED"
	// ErrCodeStepPanic indicates a pipeline step panicked during execution.
	ErrCodeStepPanic ErrorCode = "STEP_PANIC"
	// ErrCodeAborted indicates the pipeline run was aborted before completion.
	ErrCodeAborted ErrorCode = "ABORTED"
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the data context is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeStepFailed:   true,
	ErrCodeTimeout:      true,
	ErrCodeStepPanic:    false,
	ErrCodeAborted:      false,
	ErrCodeInvalidInput: false,
	ErrCodeMissingField: false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
