// Package repository defines data access interfaces for folders and share
// grants. No business logic here — strictly persistence operations.
package repository

import "errors"

// ErrNotFound is returned when a record with the given ID does not exist.
var ErrNotFound = errors.New("record not found")
