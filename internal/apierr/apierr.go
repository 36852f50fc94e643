package apierr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindUnavailable
)

// Error is the typed failure surfaced by the service layer. Entity and the
// formatted message carry enough context for the transport layer to map it
// without inspecting the wrapped error.
type Error struct {
	Kind   Kind
	Entity string
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(entity string, id uint) *Error {
	return &Error{
		Kind:   KindNotFound,
		Entity: entity,
		Msg:    fmt.Sprintf("%s with id '%d' not found", entity, id),
	}
}

func NotFoundf(entity, format string, args ...interface{}) *Error {
	return &Error{
		Kind:   KindNotFound,
		Entity: entity,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func Conflictf(entity, format string, args ...interface{}) *Error {
	return &Error{
		Kind:   KindConflict,
		Entity: entity,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func Unavailable(msg string, err error) *Error {
	return &Error{Kind: KindUnavailable, Msg: msg, Err: err}
}

func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsConflict(err error) bool { return KindOf(err) == KindConflict }
