// Package kiterrs defines the error framework shared by the wire
// protocol packages. Errors carry a category, a stable code, and
// free-form metadata so hosts can log and route failures without
// matching on message strings.
package kiterrs

import (
	"fmt"
	"maps"
)

// ErrorCategory groups errors by the layer that raised them.
type ErrorCategory string

const (
	// CategoryDecode covers failures turning raw bytes into typed messages.
	CategoryDecode ErrorCategory = "decode"
	// CategoryWire covers failures reading or writing framed lines.
	CategoryWire ErrorCategory = "wire"
	// CategorySession covers prompt and request correlation failures.
	CategorySession ErrorCategory = "session"
	// CategoryCommand covers host-side command execution failures.
	CategoryCommand ErrorCategory = "command"
	// CategoryConfig covers configuration loading failures.
	CategoryConfig ErrorCategory = "config"
)

// ErrorCode identifies a specific failure within a category.
type ErrorCode string

// Decode error codes.
const (
	ErrCodeNotJSON        ErrorCode = "not_json"
	ErrCodeMissingType    ErrorCode = "missing_type"
	ErrCodeUnknownType    ErrorCode = "unknown_type"
	ErrCodeInvalidPayload ErrorCode = "invalid_payload"
	ErrCodeEncodeFailed   ErrorCode = "encode_failed"
)

// Wire error codes.
const (
	ErrCodeReadFailed    ErrorCode = "read_failed"
	ErrCodeWriteFailed   ErrorCode = "write_failed"
	ErrCodeLineTooLong   ErrorCode = "line_too_long"
	ErrCodeStreamClosed  ErrorCode = "stream_closed"
	ErrCodeStreamFailed  ErrorCode = "stream_failed"
	ErrCodeAcceptFailed  ErrorCode = "accept_failed"
	ErrCodeUpgradeFailed ErrorCode = "upgrade_failed"
)

// Session error codes.
const (
	ErrCodeSessionClosed      ErrorCode = "session_closed"
	ErrCodeDuplicateRequest   ErrorCode = "duplicate_request"
	ErrCodeNoPendingRequest   ErrorCode = "no_pending_request"
	ErrCodeResponseTimeout    ErrorCode = "response_timeout"
	ErrCodeUnexpectedResponse ErrorCode = "unexpected_response"
	ErrCodePromptReplaced     ErrorCode = "prompt_replaced"
	ErrCodePromptEscaped      ErrorCode = "prompt_escaped"
	ErrCodePromptAbandoned    ErrorCode = "prompt_abandoned"
)

// Command error codes.
const (
	ErrCodeCommandFailed      ErrorCode = "command_failed"
	ErrCodeCommandUnsupported ErrorCode = "command_unsupported"
	ErrCodeScriptletFailed    ErrorCode = "scriptlet_failed"
)

// Config error codes.
const (
	ErrCodeConfigRead    ErrorCode = "config_read"
	ErrCodeConfigInvalid ErrorCode = "config_invalid"
)

// KitError is the interface every error in this package satisfies.
type KitError interface {
	error
	// Code returns the stable error code.
	Code() ErrorCode
	// Category returns the layer the error belongs to.
	Category() ErrorCategory
	// Unwrap returns the underlying cause, if any.
	Unwrap() error
	// Metadata returns structured context attached to the error.
	Metadata() map[string]any
}

// BaseError provides the shared implementation for typed errors.
type BaseError struct {
	code     ErrorCode
	category ErrorCategory
	message  string
	cause    error
	metadata map[string]any
}

// NewBaseError creates a base error in the given category.
func NewBaseError(
	category ErrorCategory,
	code ErrorCode,
	message string,
	cause error,
) *BaseError {
	return &BaseError{
		code:     code,
		category: category,
		message:  message,
		cause:    cause,
		metadata: make(map[string]any),
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.category, e.message, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.category, e.message)
}

// Code returns the error code.
func (e *BaseError) Code() ErrorCode {
	return e.code
}

// Category returns the error category.
func (e *BaseError) Category() ErrorCategory {
	return e.category
}

// Unwrap returns the underlying cause.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Metadata returns the error metadata.
func (e *BaseError) Metadata() map[string]any {
	return e.metadata
}

// WithMetadata attaches a single metadata entry to the error.
func (e *BaseError) WithMetadata(key string, value any) *BaseError {
	e.metadata[key] = value

	return e
}

// WithMetadataMap attaches several metadata entries at once.
func (e *BaseError) WithMetadataMap(metadata map[string]any) *BaseError {
	maps.Copy(e.metadata, metadata)

	return e
}
