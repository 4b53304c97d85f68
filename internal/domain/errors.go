package domain

import "errors"

// ErrorKind classifies failures so delivery code can pick a status without
// matching on message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindBadRequest
	KindNotFound
	KindConflict
)

// Error is the application-level error produced by repositories and usecases.
// Message is safe to return to clients.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewBadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// KindOf reports the ErrorKind of err, or KindUnknown when err does not wrap
// a *Error. Unknown errors are treated as infrastructure failures.
func KindOf(err error) ErrorKind {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind
	}
	return KindUnknown
}
