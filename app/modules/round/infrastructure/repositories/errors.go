package rounddb

import "errors"

// ErrNotFound is returned when no round matches the lookup.
var ErrNotFound = errors.New("round not found")
