package pathfind

import (
	"fmt"

	"github.com/katalvlaran/fieldpath/costfield"
)

// reconstruct walks parent links from goal back to start, reverses them
// into start-to-goal order, and reports the accumulated cost g(goal).
// A missing parent link before reaching start indicates a search
// invariant was violated and is reported as ErrInternal — this should
// never happen for a goal the runner actually finalized.
// Complexity: O(path length).
func (r *runner) reconstruct(start, goal costfield.Coord) ([]costfield.Coord, uint64, error) {
	cost := r.rec(goal).g

	path := []costfield.Coord{goal}
	cur := goal
	for cur != start {
		rec := r.rec(cur)
		if !rec.parentSet {
			return nil, 0, fmt.Errorf("%w: no parent link at %v before reaching start", ErrInternal, cur)
		}
		cur = rec.parent
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, cost, nil
}
