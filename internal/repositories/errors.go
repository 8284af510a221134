package repositories

import "errors"

// ErrNotFound is returned when an identifier has no matching record.
// Handlers test for it with errors.Is to produce 404-class responses.
var ErrNotFound = errors.New("not found")
