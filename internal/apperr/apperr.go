// Package apperr classifies engine failures into the small set of kinds the
// HTTP layer knows how to translate. Services never return raw storage errors.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindValidation marks malformed or missing caller input.
	KindValidation Kind = iota
	// KindNotFound marks a referenced entity that does not exist.
	KindNotFound
	// KindConflict marks a uniqueness-rule violation.
	KindConflict
	// KindStorage marks a failure inside the storage layer itself.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "storage"
	}
}

// Error is a classified domain error with a human-readable message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match two classified errors by kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) error   { return &Error{Kind: KindConflict, Msg: msg} }

// Storage wraps a lower-level failure, keeping the cause for logs.
func Storage(msg string, err error) error {
	return &Error{Kind: KindStorage, Msg: msg, Err: err}
}

// Wrap classifies an underlying error under an explicit kind.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// HasKind reports whether err carries the given kind.
func HasKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
