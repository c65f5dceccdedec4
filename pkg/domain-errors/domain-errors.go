package domainerrors

import "errors"

// Code represents a codec error category independent of the caller.
// Codes describe what was wrong with the input, not how the caller should react.
type Code string

const (
	CodeInvalidFormat   Code = "invalid_format"   // not the expected all-digit shape
	CodeInvalidLength   Code = "invalid_length"   // digit count outside the accepted lengths
	CodeUnknownBank     Code = "unknown_bank"     // bank prefix missing from the bank table
	CodeInvalidChecksum Code = "invalid_checksum" // check digits do not match the body
	CodeInvalidInput    Code = "invalid_input"
	CodeValidation      Code = "validation_failed"
	CodeInternal        Code = "internal_error"
)

// Error wraps codec failures with a stable code.
// It is transport-agnostic and is shared by the codec, the service layer and the CLI.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the code carried by err, or CodeInternal for foreign errors.
// A nil error has no code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
