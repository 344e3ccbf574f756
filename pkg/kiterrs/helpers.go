package kiterrs

import "errors"

// IsCategory reports whether err or anything it wraps carries the
// given category.
func IsCategory(err error, category ErrorCategory) bool {
	var kerr KitError
	if !errors.As(err, &kerr) {
		return false
	}

	return kerr.Category() == category
}

// IsCode reports whether err or anything it wraps carries the given
// code.
func IsCode(err error, code ErrorCode) bool {
	var kerr KitError
	if !errors.As(err, &kerr) {
		return false
	}

	return kerr.Code() == code
}

// CodeOf extracts the error code from err, or "" when err is not a
// KitError.
func CodeOf(err error) ErrorCode {
	var kerr KitError
	if !errors.As(err, &kerr) {
		return ""
	}

	return kerr.Code()
}

// Wrap wraps err in a typed error for the given category, preserving
// err as the cause.
func Wrap(
	category ErrorCategory,
	code ErrorCode,
	message string,
	err error,
) KitError {
	switch category {
	case CategoryDecode:
		return NewDecodeError(code, message, err)
	case CategoryWire:
		return NewWireError(code, message, err)
	case CategorySession:
		return NewSessionError(code, message, err)
	case CategoryCommand:
		return NewCommandError(code, message, err)
	case CategoryConfig:
		return NewConfigError(code, message, err)
	default:
		return NewBaseError(category, code, message, err)
	}
}
