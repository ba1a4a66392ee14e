package pagegrab

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// NOTE: these are meant to be generic and they map well to HTTP-style
// outcome classes, but they are not tied to any transport. "Not found"
// conditions in discovery and detection are represented as empty results,
// not as ENOTFOUND errors; the code exists for lookups by explicit key
// (e.g., extracting a table index that does not exist).
const (
	EINVALID    = "invalid"    // validation failed
	ENOTFOUND   = "not_found"  // entity does not exist
	ENOCONTEXT  = "no_context" // live page context required but not supplied
	ETIMEOUT    = "timeout"    // remote page context did not reply in time
	EUNRESOLVED = "unresolved" // all resolution strategies attempted and failed
	EINTERNAL   = "internal"   // internal error
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("pagegrab error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
