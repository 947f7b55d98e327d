package topology

import "github.com/katalvlaran/fieldpath/costfield"

// Temporal3D is the reach-bounded, time-monotone topology over a 3D
// costfield.Field. Every successor of (x, y, t) is (x+dx, y+dy, t+1) for
// |dx| ≤ Reach, |dy| ≤ Reach, (dx, dy) ≠ (0, 0), filtered by field bounds.
//
// The stationary move (dx=0, dy=0) is always excluded: a temporal cost
// volume represents an evolving field and a route must be a trajectory,
// not a tour of history. This also keeps the induced graph a DAG, which
// bounds the frontier and guarantees termination independent of costs
// (see package pathfind).
type Temporal3D struct {
	field *costfield.Field
	Reach int

	offsets [][2]int
}

// NewTemporal3D builds a Temporal3D topology bound to field with the given
// per-axis spatial reach. Returns ErrBadReach if reach < 1.
func NewTemporal3D(field *costfield.Field, reach int) (*Temporal3D, error) {
	if reach < 1 {
		return nil, ErrBadReach
	}

	offsets := make([][2]int, 0, (2*reach+1)*(2*reach+1)-1)
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			offsets = append(offsets, [2]int{dx, dy})
		}
	}

	return &Temporal3D{field: field, Reach: reach, offsets: offsets}, nil
}

// Successors appends every in-bounds, reach-feasible, time-advancing
// neighbor of c to dst and returns the extended slice.
// Complexity: O(Reach²).
func (t *Temporal3D) Successors(c costfield.Coord, dst []costfield.Coord) []costfield.Coord {
	nt := c.T + 1
	for _, d := range t.offsets {
		n := costfield.Coord{X: c.X + d[0], Y: c.Y + d[1], T: nt}
		if t.field.InBounds(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Heuristic returns max(|Δt|, ⌈max(|Δx|,|Δy|)/Reach⌉) · c_min. This is
// admissible because any trajectory must cross at least |Δt| time steps,
// and each step covers at most Reach per spatial axis.
// Complexity: O(1).
func (t *Temporal3D) Heuristic(u, goal costfield.Coord) uint64 {
	dt := abs(goal.T - u.T)
	dx := abs(goal.X - u.X)
	dy := abs(goal.Y - u.Y)
	spatial := max(dx, dy)
	minSteps := (spatial + t.Reach - 1) / t.Reach // ceil division

	return uint64(max(dt, minSteps))
}
