// Package apperrors classifies the failures the API can return.
package apperrors

import "errors"

// Kind is the category of a failure, used to pick the HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	}
	return "internal"
}

// Error is a failure with a message that is safe to show to the user.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap keeps the cause for logging while exposing only the message.
func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) error   { return New(KindValidation, message) }
func Conflict(message string) error     { return New(KindConflict, message) }
func NotFound(message string) error     { return New(KindNotFound, message) }
func Unauthorized(message string) error { return New(KindUnauthorized, message) }
func RateLimited(message string) error  { return New(KindRateLimited, message) }

// KindOf returns the kind of the first *Error in the chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsExpected reports whether the failure is a user outcome rather than a system error.
func IsExpected(err error) bool {
	return KindOf(err) != KindInternal
}
