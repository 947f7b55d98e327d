package pathfind

import "github.com/katalvlaran/fieldpath/costfield"

// fringe computes a path from start to goal using Fringe Search:
// iterative deepening over f-thresholds with two FIFO frontiers ("now"
// and "next") instead of a heap.
//
// Each pass scans "now" with a growing index cursor: nodes whose current
// f = g + h is within the pass threshold F are expanded in place (their
// improved successors are appended to the same "now" slice, so they are
// visited later in this same pass); nodes whose f exceeds F are deferred
// to "next", and the smallest such f becomes the next pass's threshold.
// f is always recomputed from the node's current g at scan time rather
// than cached at insertion, so a node improved after being queued is
// picked up without any decrease-key or removal machinery.
func fringe(field *costfield.Field, topo topology, start, goal costfield.Coord) (*runner, bool) {
	r := &runner{
		field:   field,
		topo:    topo,
		goal:    goal,
		records: make([]searchRecord, field.NodeCount()),
	}

	startRec := r.rec(start)
	startRec.g = 0
	startRec.state = stateOpen
	startRec.inFrontier = true

	now := []costfield.Coord{start}
	threshold := topo.Heuristic(start, goal)

	for len(now) > 0 {
		var next []costfield.Coord
		nextThreshold := uint64(0)
		haveNext := false

		for i := 0; i < len(now); i++ {
			u := now[i]
			rec := r.rec(u)
			if !rec.inFrontier {
				continue // already handled via an earlier duplicate scan this pass
			}

			f := rec.g + topo.Heuristic(u, goal)
			if f > threshold {
				next = append(next, u)
				if !haveNext || f < nextThreshold {
					nextThreshold = f
					haveNext = true
				}
				continue
			}

			rec.inFrontier = false
			if u == goal {
				rec.state = stateClosed

				return r, true
			}

			now = r.fringeRelax(u, now)
		}

		now = next
		threshold = nextThreshold
	}

	return r, false
}

// fringeRelax examines u's successors, improves their g where a cheaper
// path was just found, and appends newly-or-again-pending successors to
// the growing "now" slice so they are scanned later in this same pass.
func (r *runner) fringeRelax(u costfield.Coord, now []costfield.Coord) []costfield.Coord {
	ur := r.rec(u)
	r.scratch = r.topo.Successors(u, r.scratch[:0])

	for _, v := range r.scratch {
		gPrime := ur.g + r.field.EdgeWeight(v)
		vr := r.rec(v)
		if vr.state != stateUnseen && gPrime >= vr.g {
			continue
		}

		vr.g = gPrime
		vr.parent = u
		vr.parentSet = true
		vr.state = stateOpen

		if !vr.inFrontier {
			vr.inFrontier = true
			now = append(now, v)
		}
	}

	return now
}
