package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldpath/internal/config"
)

func TestLoadRun_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadRun(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.DefaultRun(), cfg)
}

func TestLoadRun_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	content := `
grid_path: grid.png
algorithm: dijkstra
reach: 3
queries:
  - start: [0, 0, 0]
    end: [9, 9, 0]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.LoadRun(path)
	require.NoError(t, err)
	require.Equal(t, "grid.png", cfg.GridPath)
	require.Equal(t, "dijkstra", cfg.Algorithm)
	require.Equal(t, 3, cfg.Reach)
	require.Len(t, cfg.Queries, 1)
	require.Equal(t, [3]int{0, 0, 0}, cfg.Queries[0].Start)
	require.Equal(t, [3]int{9, 9, 0}, cfg.Queries[0].End)
	require.Equal(t, "info", cfg.LogLevel, "unset fields keep their default")
}

func TestLoadRun_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))

	_, err := config.LoadRun(path)
	require.Error(t, err)
}
