package repository

import "errors"

// ErrNotFound is returned when an operation targets a contact id that does
// not exist in the store.
var ErrNotFound = errors.New("contact not found")
