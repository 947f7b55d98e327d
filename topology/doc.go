// Package topology generates successors and admissible heuristics over a
// costfield.Field. Two topologies are provided:
//
//   - Grid2D: free 8-connected movement over a 2D field.
//   - Temporal3D: reach-bounded, strictly time-monotone movement over a
//     3D field, where every successor advances the time coordinate by
//     exactly one step.
//
// Both implementations use precomputed neighbor-offset tables (mirroring
// the teacher's GridGraph.neighborOffsets): Grid2D shares one package-level
// table, and Temporal3D builds its table once in NewTemporal3D, so
// that per-node expansion is a tight, allocation-free loop over a fixed
// offset slice filtered by costfield.Field.InBounds.
package topology

import "errors"

// ErrBadReach indicates Reach < 1 was supplied to NewTemporal3D.
var ErrBadReach = errors.New("topology: reach must be >= 1")
