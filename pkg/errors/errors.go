// Package errors carries a trace path, an i18n message key and an HTTP status
// code alongside the underlying cause. The HTTP boundary localizes the key for
// the client and logs the trace; the cause never crosses the boundary.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	trace string
	key   string
	code  int
	cause error
}

// New wraps cause with a trace path and an i18n key. Code defaults to 500.
func New(trace, i18nKey string, cause error) *Error {
	return &Error{
		trace: trace,
		key:   i18nKey,
		code:  http.StatusInternalServerError,
		cause: cause,
	}
}

// Trace prepends a trace segment. Already-classified errors keep their key
// and code, anything else becomes an internal error.
func Trace(trace string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return &Error{
			trace: trace + "." + e.trace,
			key:   e.key,
			code:  e.code,
			cause: e.cause,
		}
	}
	return New(trace, "error.internal", err)
}

func (e *Error) Code(code int) *Error {
	e.code = code
	return e
}

func (e *Error) StatusCode() int {
	return e.code
}

func (e *Error) Key() string {
	return e.key
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.trace, e.key)
	}
	return fmt.Sprintf("%s: %s: %s", e.trace, e.key, e.cause.Error())
}
