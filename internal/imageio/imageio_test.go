package imageio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldpath/internal/imageio"
)

func TestLoadGrid_Text(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n4 5 6\n"), 0o644))

	data, w, h, err := imageio.LoadGrid(path)
	require.NoError(t, err)
	require.Equal(t, 3, w)
	require.Equal(t, 2, h)
	require.Equal(t, []uint8{1, 2, 3, 4, 5, 6}, data)
}

func TestLoadGrid_Text_RaggedRowRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n4 5\n"), 0o644))

	_, _, _, err := imageio.LoadGrid(path)
	require.Error(t, err)
}

func TestLoadGrid_MissingFile(t *testing.T) {
	_, _, _, err := imageio.LoadGrid(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
