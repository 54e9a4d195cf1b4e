package data

import "errors"

// ErrNotFound is returned when a document addressed by id or key does not exist.
var ErrNotFound = errors.New("document not found")
