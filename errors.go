package runa

import (
	"errors"
)

// Error codes of the transformation pipeline. The codes are negative so
// that they can double as result lengths in the two-call sizing
// convention; NOERROR is never reported, it exists for Code.
const (
	NOERROR      int = 0
	ENOMEM       int = -1 // result memory could not be obtained
	EOVERFLOW    int = -2 // required size exceeds the length type
	EINVALIDUTF8 int = -3 // malformed byte sequence in input
	ENOTASSIGNED int = -4 // unassigned codepoint under RejectNA
	EINVALIDOPTS int = -5 // incoherent option combination
)

// ErrorText returns the message for a pipeline error code.
func ErrorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case ENOMEM:
		return "memory for result could not be allocated"
	case EOVERFLOW:
		return "input string too long to be processed"
	case EINVALIDUTF8:
		return "invalid UTF-8 string"
	case ENOTASSIGNED:
		return "unassigned Unicode codepoint found"
	case EINVALIDOPTS:
		return "invalid options for UTF-8 processing chosen"
	}
	return "unknown error while processing UTF-8 data"
}

// CodedError is an error with an associated pipeline error code.
type CodedError interface {
	error
	ErrorCode() int
}

type runaError struct {
	code int
	msg  string
}

func (e *runaError) Error() string {
	return e.msg
}

func (e *runaError) ErrorCode() int {
	return e.code
}

var _ CodedError = &runaError{}

// Sentinel errors returned by the transformation functions. They match
// with errors.Is and carry their pipeline code.
//
// ErrNoMem is reserved: allocation in Go fails by panicking, not by
// returning, so the pipeline never produces it. It exists so that
// callers bridging to environments with recoverable allocation can
// report it through the same taxonomy.
var (
	ErrNoMem          = &runaError{ENOMEM, ErrorText(ENOMEM)}
	ErrOverflow       = &runaError{EOVERFLOW, ErrorText(EOVERFLOW)}
	ErrInvalidUTF8    = &runaError{EINVALIDUTF8, ErrorText(EINVALIDUTF8)}
	ErrNotAssigned    = &runaError{ENOTASSIGNED, ErrorText(ENOTASSIGNED)}
	ErrInvalidOptions = &runaError{EINVALIDOPTS, ErrorText(EINVALIDOPTS)}
)

// Code returns the pipeline error code of err. A nil err maps to
// NOERROR. Errors that did not originate in this package carry no code;
// Code reports NOERROR for them as well, so when provenance matters,
// match the sentinel errors with errors.Is instead.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	if e := CodedError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return NOERROR
}
