package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/fieldpath/costfield"
)

// runner holds the mutable state shared by Dijkstra and A*: the field and
// topology being searched, the dense ClosedState table, and the binary
// min-heap open set. Fringe Search (fringe.go) uses its own frontier
// lists instead of a heap but shares the same field/topology/records
// shape.
//
// Grounded on the teacher's dijkstra.runner (package dijkstra,
// dijkstra.go), generalized from a single strategy to a shared
// init/relax core parameterized by reopening policy and heuristic use.
type runner struct {
	field *costfield.Field
	topo  topology
	goal  costfield.Coord

	records []searchRecord
	heap    openSet
	seq     int
	scratch []costfield.Coord
}

// newRunner allocates a dense records table sized to field.NodeCount(),
// seeds the start node with g=0, and pushes it onto the open set with the
// given initial heuristic value (0 for Dijkstra, topo.Heuristic(start,
// goal) for A*).
func newRunner(field *costfield.Field, topo topology, start, goal costfield.Coord, startH uint64) *runner {
	r := &runner{
		field:   field,
		topo:    topo,
		goal:    goal,
		records: make([]searchRecord, field.NodeCount()),
	}
	heap.Init(&r.heap)

	sr := r.rec(start)
	sr.g = 0
	sr.state = stateOpen
	r.pushHeap(start, 0, startH)

	return r
}

// rec returns a pointer to c's dense search record.
func (r *runner) rec(c costfield.Coord) *searchRecord {
	return &r.records[r.field.NodeIndex(c)]
}

// pushHeap pushes a new (g, h) entry for c, stamping it with a
// monotonically increasing sequence number for deterministic tie-breaks.
func (r *runner) pushHeap(c costfield.Coord, g, h uint64) {
	r.seq++
	heap.Push(&r.heap, &openEntry{f: g + h, h: h, seq: r.seq, g: g, node: c})
}

// runHeap drives the shared Dijkstra/A* loop: pop the minimum-f entry,
// discard it if stale or already finalized, finalize it otherwise, and
// terminate when the goal is finalized for real (popped with f equal to
// its current g+h) or the open set empties (Unreachable).
//
// allowReopen selects Dijkstra's "never reopen a closed node" policy
// (false) versus A*'s "reopen on strictly cheaper rediscovery" policy
// (true). useHeuristic selects Dijkstra's identically-zero heuristic
// (false) versus A*'s admissible topo.Heuristic (true).
func (r *runner) runHeap(start, goal costfield.Coord, allowReopen, useHeuristic bool) bool {
	for r.heap.Len() > 0 {
		e := heap.Pop(&r.heap).(*openEntry)
		rec := r.rec(e.node)

		// Stale entry: a cheaper path to this node was found after this
		// entry was pushed. Discard rather than decrease-key.
		if e.g != rec.g {
			continue
		}
		// Already finalized by an earlier, equally-valid pop.
		if rec.state == stateClosed {
			continue
		}

		rec.state = stateClosed
		if e.node == goal {
			return true
		}

		r.relax(e.node, allowReopen, useHeuristic)
	}

	return false
}

// relax examines every successor of u and improves its g if a cheaper
// path was just found, (re)inserting it into the open set.
func (r *runner) relax(u costfield.Coord, allowReopen, useHeuristic bool) {
	ur := r.rec(u)
	r.scratch = r.topo.Successors(u, r.scratch[:0])

	for _, v := range r.scratch {
		vr := r.rec(v)
		if vr.state == stateClosed && !allowReopen {
			continue
		}

		gPrime := ur.g + r.field.EdgeWeight(v)
		if vr.state != stateUnseen && gPrime >= vr.g {
			continue
		}

		vr.g = gPrime
		vr.parent = u
		vr.parentSet = true
		vr.state = stateOpen

		var h uint64
		if useHeuristic {
			h = r.topo.Heuristic(v, r.goal)
		}
		r.pushHeap(v, gPrime, h)
	}
}
