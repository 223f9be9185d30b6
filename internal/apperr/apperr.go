// Package apperr defines the service error taxonomy. Handlers map kinds to
// HTTP statuses; the sync orchestrator uses kinds to decide what is a
// per-match failure versus a page-level one.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for propagation decisions
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindProvider
	KindPersistence
)

// Error carries a kind alongside a wrapped cause
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Kind returns the classification of e
func (e *Error) Kind() Kind { return e.kind }

// New creates a classified error with a formatted message
func New(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an existing error. Returns nil if err is nil.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), err: err}
}

// KindOf extracts the kind of err, KindUnknown for unclassified errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

// IsValidation reports whether err is classified as a validation failure
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsNotFound reports whether err is classified as not-found
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsProvider reports whether err is classified as a provider failure
func IsProvider(err error) bool { return KindOf(err) == KindProvider }

// IsPersistence reports whether err is classified as a store failure
func IsPersistence(err error) bool { return KindOf(err) == KindPersistence }
