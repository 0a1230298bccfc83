package application

import (
	"errors"
	"fmt"

	"github.com/oksasatya/shopcart-api/internal/domain/repository"
)

// Kind classifies application errors; the HTTP layer maps each kind to a status.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindInvalidCredentials
	KindInvalidToken
	KindUnauthenticated
	KindUnauthorized
	KindStorage
)

// Error is a classified failure with a message safe to show to clients.
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

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works for every not-found message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrValidation         = &Error{Kind: KindValidation, Message: "validation error"}
	ErrConflict           = &Error{Kind: KindConflict, Message: "conflict"}
	ErrNotFound           = &Error{Kind: KindNotFound, Message: "not found"}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "Invalid credentials."}
	ErrInvalidToken       = &Error{Kind: KindInvalidToken, Message: "The password reset token is invalid or has expired."}
	ErrUnauthenticated    = &Error{Kind: KindUnauthenticated, Message: "Authentication token required."}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized, Message: "Invalid or expired token."}
	ErrStorage            = &Error{Kind: KindStorage, Message: "storage unavailable"}
)

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// storageErr classifies datastore failures; other errors pass through untouched.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, repository.ErrStorage) {
		return &Error{Kind: KindStorage, Message: ErrStorage.Message, Err: err}
	}
	return err
}

// KindOf returns the kind of err, or 0 when err is not an application error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}
