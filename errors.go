package sqlbx

import (
	"errors"
	"fmt"
)

/*
Error codes. You probably shouldn't use this directly; instead, use the `Err`
variables with `errors.Is`.
*/
type ErrCode string

const (
	ErrCodeUnknown      ErrCode = ""
	ErrCodeInvalidInput ErrCode = "InvalidInput"
	ErrCodeUnknownField ErrCode = "UnknownField"
	ErrCodeMissingField ErrCode = "MissingField"
	ErrCodeTypeMismatch ErrCode = "TypeMismatch"
	ErrCodeInternal     ErrCode = "Internal"
)

/*
Use blank error variables to detect error types:

	if errors.Is(err, sqlbx.ErrUnknownField) {
		// Handle specific error.
	}

Errors returned by this package can't be compared via `==` because they may
include additional details about the circumstances. When compared by
`errors.Is`, they compare `.Cause` and fall back on `.Code`.
*/
var (
	ErrInvalidInput = Err{Code: ErrCodeInvalidInput, Cause: errors.New(`invalid input`)}
	ErrUnknownField = Err{Code: ErrCodeUnknownField, Cause: errors.New(`unknown field`)}
	ErrMissingField = Err{Code: ErrCodeMissingField, Cause: errors.New(`missing field`)}
	ErrTypeMismatch = Err{Code: ErrCodeTypeMismatch, Cause: errors.New(`type mismatch`)}
	ErrInternal     = Err{Code: ErrCodeInternal, Cause: errors.New(`internal error`)}
)

// Type of errors returned by this package and its sub-packages.
type Err struct {
	Code  ErrCode
	While string
	Cause error
}

// Implement `error`.
func (self Err) Error() string {
	if self == (Err{}) {
		return ``
	}
	msg := `[sqlbx]`
	if self.Code != ErrCodeUnknown {
		msg += fmt.Sprintf(` %s`, self.Code)
	}
	if self.While != `` {
		msg += fmt.Sprintf(` while %v`, self.While)
	}
	if self.Cause != nil {
		msg += `: ` + self.Cause.Error()
	}
	return msg
}

// Implement a hidden interface in "errors".
func (self Err) Is(other error) bool {
	if self.Cause != nil && errors.Is(self.Cause, other) {
		return true
	}
	err, ok := other.(Err)
	return ok && err.Code == self.Code
}

// Implement a hidden interface in "errors".
func (self Err) Unwrap() error { return self.Cause }

/*
Returns a copy with the given "while" description. Exported for sub-packages
such as "sqlbx/pg", which report errors in the same format.
*/
func (self Err) During(while string) Err {
	self.While = while
	return self
}

// Returns a copy with the given cause. See `Err.During`.
func (self Err) Because(cause error) Err {
	self.Cause = cause
	return self
}
