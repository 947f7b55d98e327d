package pathfind

import "github.com/katalvlaran/fieldpath/costfield"

// openEntry is one (f, coord) entry in the open set's min-heap, keyed by
// f = g + h (h ≡ 0 for Dijkstra, making f = g). g is the node's g at the
// moment this entry was pushed, so a popped entry can be compared against
// the node's current best-known g to detect staleness.
//
// Grounded on the teacher's dijkstra.nodeItem / nodePQ (package dijkstra,
// dijkstra.go), generalized from a single dist key to (f, h, seq) with an
// explicit insertion-order tie-break.
type openEntry struct {
	f, h uint64
	seq  int
	g    uint64
	node costfield.Coord
}

// openSet is a binary min-heap over openEntry, ordered by f ascending,
// then h ascending (prefer progress toward goal), then insertion order
// (deterministic tie-break). It tolerates stale entries: pushing a
// duplicate on improvement is cheaper than a decrease-key heap, and the
// consumer discards a popped entry whose g no longer matches the node's
// current record.
type openSet []*openEntry

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	if s[i].h != s[j].h {
		return s[i].h < s[j].h
	}

	return s[i].seq < s[j].seq
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x interface{}) {
	*s = append(*s, x.(*openEntry))
}

func (s *openSet) Pop() interface{} {
	old := *s
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*s = old[:n-1]

	return item
}
