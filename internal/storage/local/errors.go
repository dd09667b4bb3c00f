package local

import "errors"

var (
	// ErrNotFound is returned when a slot has never been written.
	ErrNotFound = errors.New("not found")
)
