// Package pathfind implements shortest-path search over the implicit
// graph induced by a dense costfield.Field: three strategies (Dijkstra,
// A*, Fringe Search) over two topologies (package topology's Grid2D and
// Temporal3D), behind one validated entry point.
//
// # Invariants
//
//  1. For every Closed node u, g(u) equals the true minimum cost from
//     start to u under Dijkstra and A* (Fringe maintains this at the
//     moment a node is finalized for the last time).
//  2. For every Open node u, there exists a path of cost g(u) from
//     start; g(u) may decrease (reopening allowed when a cheaper path is
//     found before the node is closed).
//  3. The heuristic supplied by the topology is admissible.
//  4. Temporal3D successors strictly increase the time coordinate by
//     exactly 1.
//  5. The returned path starts at start, ends at end, and every
//     consecutive pair is a valid Topology successor.
//
// # Lifecycle
//
// All search state (the dense records table and open set/frontier) is
// allocated fresh per call and released on return; nothing is cached
// across calls, and nothing is shared between concurrent calls against
// the same costfield.Field (which each call only reads).
//
// # Errors
//
// FindPath2D and FindRouteTemporal return one of ErrUnknownAlgorithm,
// ErrBadShape, ErrOutOfBounds, ErrBadParameter, or ErrInternal on
// precondition violation or invariant breakage. Reachability failure is
// reported as (nil, 0, nil), never as an error.
package pathfind
