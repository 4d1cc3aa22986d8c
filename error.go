package ocimcp

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrConflict
	ErrUnavailable
	ErrInternalServerError
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Err is an error kind. Use With or Withf to attach a message; the message
// alone is what callers see, the kind remains matchable with errors.Is.
type Err int

type wrapped struct {
	kind    Err
	message string
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrConflict:
		return "conflict"
	case ErrUnavailable:
		return "unavailable"
	case ErrInternalServerError:
		return "internal server error"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...any) error {
	return &wrapped{kind: e, message: fmt.Sprint(args...)}
}

func (e Err) Withf(format string, args ...any) error {
	return &wrapped{kind: e, message: fmt.Sprintf(format, args...)}
}

func (w *wrapped) Error() string {
	return w.message
}

func (w *wrapped) Unwrap() error {
	return w.kind
}
