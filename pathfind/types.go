package pathfind

import "github.com/katalvlaran/fieldpath/costfield"

// Algorithm names accepted by Dispatch, exactly as specified in §6.
const (
	AlgorithmAStar    = "astar"
	AlgorithmDijkstra = "dijkstra"
	AlgorithmFringe   = "fringe"
)

// topology is the successor-generation contract both Grid2D and
// Temporal3D satisfy. pathfind depends only on this interface so that
// Dispatch can select either implementation uniformly.
type topology interface {
	Successors(c costfield.Coord, dst []costfield.Coord) []costfield.Coord
	Heuristic(u, goal costfield.Coord) uint64
}

// nodeState is the per-node visitation flag of §3's SearchRecord.
type nodeState uint8

const (
	stateUnseen nodeState = iota
	stateOpen
	stateClosed
)

// searchRecord is the per-node bookkeeping described in §3: best-known g,
// parent link, and visitation state. parentSet distinguishes "no parent
// recorded yet" from "parent is the zero Coord", since (0,0[,0]) is itself
// a valid coordinate.
type searchRecord struct {
	g         uint64
	parent    costfield.Coord
	parentSet bool
	state     nodeState

	// inFrontier is used only by the Fringe strategy to track whether a
	// node is currently pending in "now" or "next", preventing duplicate
	// insertion. Dijkstra and A* leave it at its zero value.
	inFrontier bool
}

// Options configures a FindRouteTemporal call. FindPath2D takes no
// options: Grid2D has no tunable parameters beyond the field itself.
//
// Grounded on the teacher's dijkstra.Options / dijkstra.Option functional
// options pattern (package dijkstra, types.go).
type Options struct {
	// Reach bounds per-step spatial displacement on Temporal3D. Must be
	// >= 1. Default 1.
	Reach int
}

// Option is a functional option for FindRouteTemporal.
type Option func(*Options)

// WithReach sets the per-step spatial reach for temporal routing.
func WithReach(reach int) Option {
	return func(o *Options) { o.Reach = reach }
}

// DefaultOptions returns Options with Reach=1, the spec's documented
// default.
func DefaultOptions() Options {
	return Options{Reach: 1}
}
