package database

import "errors"

// ErrNotFound is returned when a lookup matches no row. Callers distinguish it
// from ownership failures, which the services layer reports separately.
var ErrNotFound = errors.New("record not found")
