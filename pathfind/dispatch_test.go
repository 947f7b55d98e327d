package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldpath/costfield"
	"github.com/katalvlaran/fieldpath/pathfind"
)

// flat2D builds a w×h field filled with fill, then applies overrides
// (x, y, value) on top.
func flat2D(t *testing.T, w, h int, fill uint8, overrides [][3]int) *costfield.Field {
	t.Helper()
	data := make([]uint8, w*h)
	for i := range data {
		data[i] = fill
	}
	for _, o := range overrides {
		data[o[1]*w+o[0]] = uint8(o[2])
	}
	f, err := costfield.New2D(data, w, h)
	require.NoError(t, err)

	return f
}

// S1: 10x10 diagonal corridor, astar.
func TestFindPath2D_S1_DiagonalAStar(t *testing.T) {
	overrides := make([][3]int, 10)
	for i := 0; i < 10; i++ {
		overrides[i] = [3]int{i, i, 10}
	}
	f := flat2D(t, 10, 10, 200, overrides)

	path, cost, err := pathfind.FindPath2D(f, costfield.Coord{X: 0, Y: 0}, costfield.Coord{X: 9, Y: 9}, pathfind.AlgorithmAStar)
	require.NoError(t, err)
	require.NotNil(t, path)

	want := make([]costfield.Coord, 10)
	for i := 0; i < 10; i++ {
		want[i] = costfield.Coord{X: i, Y: i}
	}
	require.Equal(t, want, path)
	require.EqualValues(t, 90, cost)
}

// S2: 5x5 L-shaped cheap corridor, dijkstra.
func TestFindPath2D_S2_LPathDijkstra(t *testing.T) {
	var overrides [][3]int
	for x := 0; x < 5; x++ {
		overrides = append(overrides, [3]int{x, 0, 10}) // top row
	}
	for y := 0; y < 5; y++ {
		overrides = append(overrides, [3]int{4, y, 10}) // right column
	}
	f := flat2D(t, 5, 5, 50, overrides)

	path, cost, err := pathfind.FindPath2D(f, costfield.Coord{X: 0, Y: 0}, costfield.Coord{X: 4, Y: 4}, pathfind.AlgorithmDijkstra)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	require.Equal(t, costfield.Coord{X: 0, Y: 0}, path[0])
	require.Equal(t, costfield.Coord{X: 4, Y: 4}, path[len(path)-1])

	var sum uint64
	for _, c := range path[1:] {
		sum += f.EdgeWeight(c)
	}
	require.Equal(t, sum, cost)
}

// S3: temporal identity trajectory (t,t,t), astar.
func TestFindRouteTemporal_S3_Identity(t *testing.T) {
	w, h, tt := 10, 10, 5
	data := make([]uint8, w*h*tt)
	for i := range data {
		data[i] = 150
	}
	for tIdx := 0; tIdx < tt; tIdx++ {
		data[tIdx*w*h+tIdx*w+tIdx] = 20
	}
	f, err := costfield.New3D(data, tt, h, w, 0)
	require.NoError(t, err)

	start := costfield.Coord{X: 0, Y: 0, T: 0}
	end := costfield.Coord{X: 4, Y: 4, T: 4}
	path, cost, err := pathfind.FindRouteTemporal(f, pathfind.AlgorithmAStar, start, end, pathfind.WithReach(1))
	require.NoError(t, err)
	require.NotNil(t, path)

	want := make([]costfield.Coord, 5)
	for tIdx := 0; tIdx < 5; tIdx++ {
		want[tIdx] = costfield.Coord{X: tIdx, Y: tIdx, T: tIdx}
	}
	require.Equal(t, want, path)
	require.EqualValues(t, 80, cost)
}

// S4: reach-dependent reachability.
func TestFindRouteTemporal_S4_ReachRequired(t *testing.T) {
	w, h, tt := 8, 8, 3
	data := make([]uint8, w*h*tt)
	for i := range data {
		data[i] = 120
	}
	for tIdx := 0; tIdx < tt; tIdx++ {
		y, x := 2*tIdx, 2*tIdx
		if y < h && x < w {
			data[tIdx*w*h+y*w+x] = 25
		}
	}
	f, err := costfield.New3D(data, tt, h, w, 0)
	require.NoError(t, err)

	start := costfield.Coord{X: 0, Y: 0, T: 0}
	end := costfield.Coord{X: 4, Y: 4, T: 2}

	path, _, err := pathfind.FindRouteTemporal(f, pathfind.AlgorithmDijkstra, start, end, pathfind.WithReach(1))
	require.NoError(t, err)
	require.Nil(t, path, "reach=1 should be unreachable for a displacement of 4 over 2 steps")

	path2, cost2, err := pathfind.FindRouteTemporal(f, pathfind.AlgorithmDijkstra, start, end, pathfind.WithReach(2))
	require.NoError(t, err)
	require.NotNil(t, path2)
	require.EqualValues(t, 50, cost2)
}

// S5: unknown algorithm.
func TestFindPath2D_S5_UnknownAlgorithm(t *testing.T) {
	f := flat2D(t, 5, 5, 1, nil)
	_, _, err := pathfind.FindPath2D(f, costfield.Coord{X: 0, Y: 0}, costfield.Coord{X: 4, Y: 4}, "invalid_algo")
	require.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)
}

// S6: out-of-bounds start.
func TestFindPath2D_S6_OutOfBounds(t *testing.T) {
	f := flat2D(t, 5, 5, 1, nil)
	_, _, err := pathfind.FindPath2D(f, costfield.Coord{X: 10, Y: 0}, costfield.Coord{X: 4, Y: 4}, pathfind.AlgorithmAStar)
	require.ErrorIs(t, err, pathfind.ErrOutOfBounds)
}

func TestFindPath2D_BadShape(t *testing.T) {
	f, err := costfield.New3D(make([]uint8, 8), 2, 2, 2, 0)
	require.NoError(t, err)
	_, _, err = pathfind.FindPath2D(f, costfield.Coord{}, costfield.Coord{X: 1, Y: 1}, pathfind.AlgorithmAStar)
	require.ErrorIs(t, err, pathfind.ErrBadShape)
}

func TestFindRouteTemporal_FringeRejected(t *testing.T) {
	f, err := costfield.New3D(make([]uint8, 8), 2, 2, 2, 0)
	require.NoError(t, err)
	_, _, err = pathfind.FindRouteTemporal(f, pathfind.AlgorithmFringe, costfield.Coord{}, costfield.Coord{X: 1, Y: 1, T: 1})
	require.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)
}

func TestFindRouteTemporal_BadParameter(t *testing.T) {
	f, err := costfield.New3D(make([]uint8, 2*2*3), 3, 2, 2, 0)
	require.NoError(t, err)

	_, _, err = pathfind.FindRouteTemporal(f, pathfind.AlgorithmAStar, costfield.Coord{T: 1}, costfield.Coord{T: 0}, pathfind.WithReach(1))
	require.ErrorIs(t, err, pathfind.ErrBadParameter, "t_end < t_start must be BadParameter")

	_, _, err = pathfind.FindRouteTemporal(f, pathfind.AlgorithmAStar, costfield.Coord{}, costfield.Coord{T: 1}, pathfind.WithReach(0))
	require.ErrorIs(t, err, pathfind.ErrBadParameter, "reach < 1 must be BadParameter")
}
