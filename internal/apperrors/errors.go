// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so the transport layer can map it to
// a status code without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindInvalidReference
	KindDuplicateItem
	KindTooManyItems
	KindStoreUnavailable
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidInput(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func InvalidReference(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidReference, Message: fmt.Sprintf(format, args...)}
}

func DuplicateItem(format string, args ...interface{}) *Error {
	return &Error{Kind: KindDuplicateItem, Message: fmt.Sprintf(format, args...)}
}

func TooManyItems(format string, args ...interface{}) *Error {
	return &Error{Kind: KindTooManyItems, Message: fmt.Sprintf(format, args...)}
}

func StoreUnavailable(err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: "store unavailable", Err: err}
}

// KindOf returns the Kind carried by err, or KindUnknown when err is not an
// application error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsValidation reports whether err should surface as a client error (4xx)
// rather than a store failure.
func IsValidation(err error) bool {
	switch KindOf(err) {
	case KindInvalidInput, KindInvalidReference, KindDuplicateItem, KindTooManyItems:
		return true
	}
	return false
}

// MessageOf returns the user-facing message for err. Store failures include
// the underlying error for operator visibility.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return err.Error()
}
