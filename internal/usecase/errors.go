package usecase

import (
	"errors"

	"github.com/avelar/printdesk/internal/domain"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
	KindStore
)

// Error is the failure variant of every mutation result: an error kind plus a
// message safe to surface to the caller.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// validationErr hides field-level detail from the caller; the detail is
// logged server-side where the schema check happens.
func validationErr() *Error {
	return &Error{Kind: KindValidation, Message: "invalid form data, please check your input"}
}

func storeErr(err error) *Error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return &Error{Kind: KindNotFound, Message: "record not found"}
	case errors.Is(err, domain.ErrConflict):
		return &Error{Kind: KindConflict, Message: "operation conflicts with related records"}
	default:
		return &Error{Kind: KindStore, Message: "database error: " + err.Error()}
	}
}
