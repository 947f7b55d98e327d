package pathfind

import "github.com/katalvlaran/fieldpath/costfield"

// dijkstra computes the shortest path from start to goal using Dijkstra's
// algorithm: pop min-g, heuristic identically zero, closed nodes never
// reopened. Guarantees an optimal path.
func dijkstra(field *costfield.Field, topo topology, start, goal costfield.Coord) (*runner, bool) {
	r := newRunner(field, topo, start, goal, 0)
	found := r.runHeap(start, goal, false /* allowReopen */, false /* useHeuristic */)

	return r, found
}
