package tabledb

import "errors"

// ErrNotFound is returned when no table matches the lookup.
var ErrNotFound = errors.New("table not found")
