package responses

import (
	"fmt"
)

// Kind is a classification of error type.
type Kind string

const (
	InvalidInput Kind = "invalid_input"
	WrongVariant Kind = "wrong_variant"
	Decode       Kind = "decode"
	Transport    Kind = "transport"
	StatusCode   Kind = "status_code"
	Invariant    Kind = "invariant"
)

// Error represents errors from the responses layer.
type Error struct {
	Kind    Kind
	Message string
	Err     error
	// The status for the StatusCode error kind
	Status int
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidInput:
		return fmt.Sprintf("invalid input: %s", e.Message)
	case WrongVariant:
		return fmt.Sprintf("wrong variant: %s", e.Message)
	case Decode:
		if e.Err != nil {
			return fmt.Sprintf("decode error: %s: %s", e.Message, e.Err)
		}
		return fmt.Sprintf("decode error: %s", e.Message)
	case Transport:
		return fmt.Sprintf("transport error: %s", e.Err)
	case StatusCode:
		return fmt.Sprintf("status error: %s (status %d)", e.Message, e.Status)
	case Invariant:
		return fmt.Sprintf("invariant: %s", e.Message)
	default:
		return e.Message
	}
}

// Unwrap allows errors.Is / errors.As to work with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Helper constructors
func NewInvalidInputError(field string, msg string) *Error {
	return &Error{Kind: InvalidInput, Message: fmt.Sprintf("%s: %s", field, msg)}
}

// NewUnknownValueError reports a wire value outside a closed vocabulary.
func NewUnknownValueError(target string, value string) *Error {
	return &Error{Kind: InvalidInput, Message: fmt.Sprintf("unknown %s value: %q", target, value)}
}

// NewWrongVariantError reports a failed union downcast.
func NewWrongVariantError(union string, want string, got string) *Error {
	if got == "" {
		got = "empty"
	}
	return &Error{Kind: WrongVariant, Message: fmt.Sprintf("%s is %s, not %s", union, got, want)}
}

func NewDecodeError(msg string, err error) *Error {
	return &Error{Kind: Decode, Message: msg, Err: err}
}

func NewTransportError(err error) *Error {
	return &Error{Kind: Transport, Err: err}
}

func NewStatusCodeError(status int, body string) *Error {
	return &Error{Kind: StatusCode, Message: body, Status: status}
}

func NewInvariantError(msg string) *Error {
	return &Error{Kind: Invariant, Message: msg}
}
