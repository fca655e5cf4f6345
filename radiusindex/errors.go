package radiusindex

import "errors"

// Sentinel errors for radiusindex operations.
var (
	// ErrIDExists indicates Insert was called with an id already stored.
	ErrIDExists = errors.New("radiusindex: id already present")

	// ErrIDNotFound indicates Remove was called with an id not stored.
	ErrIDNotFound = errors.New("radiusindex: id not found")

	// ErrDimensionMismatch indicates a value's dimensionality differs from
	// the index's established dimensionality.
	ErrDimensionMismatch = errors.New("radiusindex: dimension mismatch")
)
