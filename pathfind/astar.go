package pathfind

import "github.com/katalvlaran/fieldpath/costfield"

// astar computes the shortest path from start to goal using A*: pop
// min-f, admissible topo.Heuristic, reopening a closed node when it is
// re-reached with a strictly lower g. Both topologies' heuristics are
// consistent, so reopening is tolerated but rare; correctness does not
// depend on it being rare.
func astar(field *costfield.Field, topo topology, start, goal costfield.Coord) (*runner, bool) {
	r := newRunner(field, topo, start, goal, topo.Heuristic(start, goal))
	found := r.runHeap(start, goal, true /* allowReopen */, true /* useHeuristic */)

	return r, found
}
