package standingsdb

import "errors"

// ErrNoSnapshot is returned when no snapshot has been computed yet.
var ErrNoSnapshot = errors.New("no standings snapshot available")
