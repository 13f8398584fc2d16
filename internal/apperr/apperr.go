package apperr

import "fmt"

// Kind classifies an error so handlers can pick a status code without
// matching on message strings.
type Kind int

const (
	KindAuthentication Kind = iota + 1
	KindForbidden
	KindNotFound
	KindConflict
	KindValidation
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	// Fields carries field-scoped validation messages, keyed by field name.
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Validation builds a single-field validation error.
func Validation(field, message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
		Fields:  map[string]string{field: message},
	}
}

// ValidationFields wraps an already-assembled field->message map.
func ValidationFields(fields map[string]string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf("internal error: %v", err)}
}
