// Package costfield provides a uniform, read-only view over a dense 2D or
// 3D array of uint8 traversal costs.
//
// A Field never copies or mutates the caller's backing slice; it only
// validates shape once at construction and thereafter answers coordinate
// queries in O(1). Darker (smaller) cell values are cheaper to traverse;
// the zero-cost floor is enforced by callers via EdgeWeight, not by Field
// itself.
//
// Coordinates are always expressed to callers in public (x, y, t) order.
// 3D fields accept an Axis designating which physical array dimension
// carries time, so the engine never has to branch on layout in an inner
// loop: Field.index folds the axis permutation in once, at construction.
package costfield

import (
	"errors"
)

// Sentinel errors for costfield construction and lookup.
var (
	// ErrEmptyField indicates a zero-length or zero-width backing array.
	ErrEmptyField = errors.New("costfield: field must have at least one cell")

	// ErrBadShape indicates the backing slice length does not match W*H(*T).
	ErrBadShape = errors.New("costfield: data length does not match shape")

	// ErrBadAxis indicates an Axis value outside {0,1,2} for a 3D field.
	ErrBadAxis = errors.New("costfield: axis must be 0, 1, or 2")
)
