package playerdb

import "errors"

// ErrNotFound is returned when no player matches the lookup.
var ErrNotFound = errors.New("player not found")
