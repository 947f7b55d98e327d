package costfield

// New2D constructs a Field over a flat, row-major W×H uint8 array
// (data[y*w+x]). The slice is borrowed, not copied; the caller must not
// mutate it while a search reads the Field.
// Returns ErrEmptyField if w or h is not positive, ErrBadShape if
// len(data) != w*h.
// Complexity: O(1).
func New2D(data []uint8, w, h int) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyField
	}
	if len(data) != w*h {
		return nil, ErrBadShape
	}

	return &Field{
		data:    data,
		w:       w,
		h:       h,
		t:       1,
		rank:    Rank2D,
		strideX: 1,
		strideY: w,
		strideT: 0,
	}, nil
}

// New3D constructs a Field over a flat, row-major dim0×dim1×dim2 uint8
// array, with axis (0, 1, or 2) designating which physical dimension
// carries time. The two remaining physical axes map to the engine's
// canonical Y and X in ascending order of their physical index — e.g.
// axis=0 over a (T, H, W) array yields Y=dim1, X=dim2; axis=2 over a
// (H, W, T) array yields Y=dim0, X=dim1.
// Returns ErrBadAxis if axis is outside {0,1,2}, ErrEmptyField if any
// dimension is not positive, ErrBadShape if len(data) != dim0*dim1*dim2.
// Complexity: O(1).
func New3D(data []uint8, dim0, dim1, dim2, axis int) (*Field, error) {
	if axis < 0 || axis > 2 {
		return nil, ErrBadAxis
	}
	dims := [3]int{dim0, dim1, dim2}
	if dims[0] <= 0 || dims[1] <= 0 || dims[2] <= 0 {
		return nil, ErrEmptyField
	}
	if len(data) != dims[0]*dims[1]*dims[2] {
		return nil, ErrBadShape
	}

	// Row-major strides of the physical array.
	physStride := [3]int{dims[1] * dims[2], dims[2], 1}

	var yAxis, xAxis int
	first := true
	for i := 0; i < 3; i++ {
		if i == axis {
			continue
		}
		if first {
			yAxis = i
			first = false
		} else {
			xAxis = i
		}
	}

	return &Field{
		data:    data,
		w:       dims[xAxis],
		h:       dims[yAxis],
		t:       dims[axis],
		rank:    Rank3D,
		strideX: physStride[xAxis],
		strideY: physStride[yAxis],
		strideT: physStride[axis],
	}, nil
}
