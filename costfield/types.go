package costfield

// Coord is an integer coordinate. 2D fields ignore T; 3D fields use all
// three components, with T interpreted as the time axis in the engine's
// canonical (x, y, t) convention regardless of how the caller's array is
// physically laid out.
type Coord struct {
	X, Y, T int
}

// Rank distinguishes a 2D grid field from a 3D temporal volume.
type Rank int

const (
	// Rank2D identifies a plain W×H grid.
	Rank2D Rank = 2
	// Rank3D identifies a W×H×T temporal volume.
	Rank3D Rank = 3
)

// Field is an immutable view over a dense uint8 cost array of rank 2 or 3.
// It owns no pixels: the backing slice is borrowed from the caller for the
// lifetime of the Field and must not be mutated concurrently with any
// search that reads it (see package pathfind's concurrency contract).
//
// strideX, strideY and strideT are precomputed once at construction so
// that index() is a branch-free dot product regardless of which physical
// array axis the caller designated as time.
type Field struct {
	data []uint8
	w, h, t int
	rank    Rank

	strideX, strideY, strideT int
}

// Shape returns the field's width, height, and time-depth. For Rank2D
// fields T is always 1.
func (f *Field) Shape() (w, h, t int) {
	return f.w, f.h, f.t
}

// Rank reports whether this field is a 2D grid or a 3D temporal volume.
func (f *Field) Rank() Rank {
	return f.rank
}

// InBounds reports whether coord lies within the field's shape.
// Complexity: O(1).
func (f *Field) InBounds(c Coord) bool {
	if c.X < 0 || c.X >= f.w || c.Y < 0 || c.Y >= f.h {
		return false
	}
	if f.rank == Rank3D && (c.T < 0 || c.T >= f.t) {
		return false
	}

	return true
}

// Cost returns the traversal cost stored at coord. The caller must ensure
// InBounds(coord) first; Cost does not bounds-check so that interior-cell
// expansion loops (package pathfind, package topology) can elide the
// check entirely at already-validated successor coordinates.
// Complexity: O(1).
func (f *Field) Cost(c Coord) uint8 {
	return f.data[f.index(c)]
}

// EdgeWeight returns the cost of moving into cell c, floored at 1 so that
// zero-cost cells never produce a zero-weight edge. This is the sole edge
// weight used by every topology and search strategy (§4.1: "zero-cost
// edges are forbidden so that g strictly increases along any non-trivial
// path").
// Complexity: O(1).
func (f *Field) EdgeWeight(c Coord) uint64 {
	w := f.Cost(c)
	if w == 0 {
		return 1
	}

	return uint64(w)
}

// index folds (x, y, t) into the flat offset of the physically-laid-out
// backing slice via the precomputed strides.
func (f *Field) index(c Coord) int {
	return c.X*f.strideX + c.Y*f.strideY + c.T*f.strideT
}

// NodeCount returns the total number of distinct coordinates in the
// field's canonical (x, y, t) space: W·H for Rank2D, W·H·T for Rank3D.
// Used by package pathfind to size its dense per-node search tables.
func (f *Field) NodeCount() int {
	return f.w * f.h * f.t
}

// NodeIndex packs a coordinate into a dense, canonical node index
// i = x + y·W (+ t·W·H), independent of how the backing array is
// physically laid out. This is a representation choice for O(1) table
// access, not part of the field's public contract beyond uniqueness.
func (f *Field) NodeIndex(c Coord) int {
	return c.X + c.Y*f.w + c.T*f.w*f.h
}
