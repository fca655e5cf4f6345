package point

import "errors"

// ErrUnknownPoint indicates Delete was called for a value with no live
// Point. This is the recoverable condition the engine surfaces to callers
// as a warning rather than a fatal error (spec §7).
var ErrUnknownPoint = errors.New("point: no such point in the store")
