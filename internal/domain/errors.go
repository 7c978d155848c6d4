package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrConflict covers store constraint violations: a Sale pointing at a
	// missing Customer/Product, deleting a row that Sales still reference,
	// or a duplicate customer email.
	ErrConflict = errors.New("conflict")
)
