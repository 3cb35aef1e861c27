// Package apierr annotates service errors with the HTTP status and machine
// code the handlers' JSON envelope should carry. Services attach an
// annotation at the point they classify a failure (item_not_found,
// cart_rejected, order_not_found, ...); errors that reach a handler without
// one are treated as server-side.
package apierr

import "fmt"

type Error struct {
	Status int
	Code   string
	Err    error
}

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("request failed (%d)", e.Status)
	}
	return "request failed"
}

func (e *Error) Unwrap() error { return e.Err }
