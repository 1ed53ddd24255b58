package service

import "fmt"

// Error is a domain error returned by service methods.
// Handlers map these to appropriate HTTP responses.
type Error struct {
	Kind    ErrorKind
	Code    string // machine-readable error code (e.g., "not_found", "forbidden")
	Message string // human-readable message
	Err     error  // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorKind classifies domain errors for HTTP status mapping.
type ErrorKind int

const (
	ErrNotFound  ErrorKind = iota // 404
	ErrForbidden                  // 403
	ErrInternal                   // 500
)

func NewNotFound(code, message string, cause error) *Error {
	return &Error{Kind: ErrNotFound, Code: code, Message: message, Err: cause}
}

func NewForbidden(code, message string) *Error {
	return &Error{Kind: ErrForbidden, Code: code, Message: message}
}

func NewInternal(code, message string, cause error) *Error {
	return &Error{Kind: ErrInternal, Code: code, Message: message, Err: cause}
}
