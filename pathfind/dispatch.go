package pathfind

import (
	"fmt"

	"github.com/katalvlaran/fieldpath/costfield"
	"github.com/katalvlaran/fieldpath/topology"
)

// FindPath2D searches field — which must be a Rank2D costfield.Field —
// for a minimum-cost path from start to end under 8-connectivity, using
// the named algorithm ("astar", "dijkstra", or "fringe").
//
// A nil path with a nil error signals Unreachable. A non-nil error is one
// of the §7 sentinels: ErrUnknownAlgorithm, ErrBadShape, ErrOutOfBounds,
// or ErrInternal.
func FindPath2D(field *costfield.Field, start, end costfield.Coord, algorithm string) ([]costfield.Coord, uint64, error) {
	if algorithm != AlgorithmAStar && algorithm != AlgorithmDijkstra && algorithm != AlgorithmFringe {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	if field.Rank() != costfield.Rank2D {
		return nil, 0, fmt.Errorf("%w: FindPath2D requires a 2D field", ErrBadShape)
	}
	if !field.InBounds(start) || !field.InBounds(end) {
		return nil, 0, fmt.Errorf("%w: start=%v end=%v", ErrOutOfBounds, start, end)
	}

	topo := topology.NewGrid2D(field)

	return runAlgorithm(field, topo, start, end, algorithm)
}

// FindRouteTemporal searches field — which must be a Rank3D
// costfield.Field — for a minimum-cost, time-monotone trajectory from
// start to end, using the named algorithm ("astar" or "dijkstra";
// "fringe" on temporal is rejected as ErrUnknownAlgorithm, since
// iterative deepening has no meaningful benefit over a monotone-time DAG
// and would be a degenerate search — see §9).
//
// A nil path with a nil error signals Unreachable, including when the
// goal is strictly unreachable given Reach and the time gap (checked
// up front, before any search runs).
func FindRouteTemporal(field *costfield.Field, algorithm string, start, end costfield.Coord, opts ...Option) ([]costfield.Coord, uint64, error) {
	if algorithm != AlgorithmAStar && algorithm != AlgorithmDijkstra {
		return nil, 0, fmt.Errorf("%w: %q (fringe is not supported on temporal fields)", ErrUnknownAlgorithm, algorithm)
	}
	if field.Rank() != costfield.Rank3D {
		return nil, 0, fmt.Errorf("%w: FindRouteTemporal requires a 3D field", ErrBadShape)
	}
	if !field.InBounds(start) || !field.InBounds(end) {
		return nil, 0, fmt.Errorf("%w: start=%v end=%v", ErrOutOfBounds, start, end)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Reach < 1 {
		return nil, 0, fmt.Errorf("%w: reach must be >= 1, got %d", ErrBadParameter, cfg.Reach)
	}

	dt := end.T - start.T
	if dt < 0 {
		return nil, 0, fmt.Errorf("%w: end.T (%d) < start.T (%d)", ErrBadParameter, end.T, start.T)
	}
	if !reachFeasible(start, end, dt, cfg.Reach) {
		return nil, 0, nil // Unreachable, not an error.
	}

	topo, err := topology.NewTemporal3D(field, cfg.Reach)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrBadParameter, err)
	}

	return runAlgorithm(field, topo, start, end, algorithm)
}

// reachFeasible reports whether end can in principle be reached from
// start in exactly dt time steps, each bounded by reach on both spatial
// axes. dt == 0 is only feasible when start == end, since Temporal3D
// never admits a zero-duration move.
func reachFeasible(start, end costfield.Coord, dt, reach int) bool {
	if dt == 0 {
		return start == end
	}

	maxDisp := dt * reach
	dx := abs(end.X - start.X)
	dy := abs(end.Y - start.Y)

	return dx <= maxDisp && dy <= maxDisp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// runAlgorithm dispatches to the named strategy and, on success,
// reconstructs the path. A strategy that never finalizes the goal
// reports Unreachable.
func runAlgorithm(field *costfield.Field, topo topology, start, end costfield.Coord, algorithm string) ([]costfield.Coord, uint64, error) {
	var r *runner
	var found bool

	switch algorithm {
	case AlgorithmDijkstra:
		r, found = dijkstra(field, topo, start, end)
	case AlgorithmAStar:
		r, found = astar(field, topo, start, end)
	case AlgorithmFringe:
		r, found = fringe(field, topo, start, end)
	}

	if !found {
		return nil, 0, nil
	}

	return r.reconstruct(start, end)
}
