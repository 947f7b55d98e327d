package pathfind

import "errors"

// Sentinel errors returned by Dispatch (FindPath2D, FindRouteTemporal).
// Reachability failure is never one of these: it is reported as a
// (nil, 0, nil) result.
var (
	// ErrUnknownAlgorithm indicates the algorithm string is not among the
	// set accepted for the requested mode.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

	// ErrOutOfBounds indicates start or end lies outside the field's shape.
	ErrOutOfBounds = errors.New("pathfind: start or end out of bounds")

	// ErrBadShape indicates the supplied field's rank is incompatible with
	// the requested mode (e.g. a 2D field passed to FindRouteTemporal).
	ErrBadShape = errors.New("pathfind: field rank incompatible with mode")

	// ErrBadParameter indicates reach < 1 or t_end < t_start. An invalid
	// time axis is not reported with this error: costfield.New3D rejects
	// it with costfield.ErrBadAxis before a field exists.
	ErrBadParameter = errors.New("pathfind: invalid parameter")

	// ErrInternal indicates a search invariant was violated during path
	// reconstruction (a parent link was missing before reaching start).
	// Its presence indicates a bug in the engine, never caller input.
	ErrInternal = errors.New("pathfind: internal invariant violation")
)
