package storage

import "errors"

// ErrNotFound is returned when a referenced listing does not exist.
var ErrNotFound = errors.New("listing not found")
