package topology

import "github.com/katalvlaran/fieldpath/costfield"

// grid2DOffsets holds the eight 8-connectivity neighbor deltas, computed
// once and shared by every Grid2D value (the offsets never depend on
// field shape).
var grid2DOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0} /*      */, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid2D is the free, 8-connected topology over a 2D costfield.Field. No
// diagonal-corner-cutting restriction is imposed: all eight neighbors are
// legal moves, filtered only by field bounds.
type Grid2D struct {
	field *costfield.Field
}

// NewGrid2D builds a Grid2D topology bound to field.
func NewGrid2D(field *costfield.Field) *Grid2D {
	return &Grid2D{field: field}
}

// Successors appends every in-bounds 8-connected neighbor of c to dst and
// returns the extended slice. dst is caller-owned scratch space, reused
// across expansions to avoid per-node allocation.
// Complexity: O(1) (at most 8 candidates).
func (g *Grid2D) Successors(c costfield.Coord, dst []costfield.Coord) []costfield.Coord {
	for _, d := range grid2DOffsets {
		n := costfield.Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if g.field.InBounds(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Heuristic returns the Chebyshev-distance lower bound on the cost from u
// to goal: max(|Δx|, |Δy|) · c_min, with c_min = 1 for uint8 fields under
// the max(1, cost) edge-weight floor. This is admissible for 8-connected
// movement since no move can cover more than one unit of Chebyshev
// distance for less than one unit of cost.
// Complexity: O(1).
func (g *Grid2D) Heuristic(u, goal costfield.Coord) uint64 {
	dx := abs(u.X - goal.X)
	dy := abs(u.Y - goal.Y)

	return uint64(max(dx, dy))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
