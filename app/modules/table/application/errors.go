package tableservice

import "errors"

// ErrValidation marks input errors caught at the boundary before any write
// is attempted.
var ErrValidation = errors.New("validation failed")
