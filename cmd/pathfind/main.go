// Command pathfind loads a cost grid and a YAML run configuration, then
// solves one or more start/end queries against it with package pathfind.
//
// Every entry in config.Run.Queries, including a lone one, is independent
// per §5's single-threaded-per-call contract and is run through errgroup,
// one goroutine per query,
// following the teacher corpus's own errgroup-supervision pattern
// (github.com/udisondev/la2go's cmd/gameserver/main.go).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fieldpath/costfield"
	"github.com/katalvlaran/fieldpath/internal/config"
	"github.com/katalvlaran/fieldpath/internal/imageio"
	"github.com/katalvlaran/fieldpath/pathfind"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML run config")
	flag.Parse()

	if *configPath == "" {
		return fmt.Errorf("-config is required")
	}

	cfg, err := config.LoadRun(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)})))
	slog.Info("run config loaded", "grid", cfg.GridPath, "algorithm", cfg.Algorithm, "temporal", cfg.Temporal, "queries", len(cfg.Queries))

	field, err := loadField(cfg)
	if err != nil {
		return fmt.Errorf("loading field: %w", err)
	}

	results := make([]result, len(cfg.Queries))
	g, _ := errgroup.WithContext(context.Background())

	for i, q := range cfg.Queries {
		i, q := i, q
		g.Go(func() error {
			start := costfield.Coord{X: q.Start[0], Y: q.Start[1], T: q.Start[2]}
			end := costfield.Coord{X: q.End[0], Y: q.End[1], T: q.End[2]}

			var path []costfield.Coord
			var cost uint64
			var err error
			if cfg.Temporal {
				path, cost, err = pathfind.FindRouteTemporal(field, cfg.Algorithm, start, end, pathfind.WithReach(cfg.Reach))
			} else {
				start.T, end.T = 0, 0 // t is ignored for 2D fields
				path, cost, err = pathfind.FindPath2D(field, start, end, cfg.Algorithm)
			}
			if err != nil {
				return fmt.Errorf("query %d (%v -> %v): %w", i, start, end, err)
			}

			results[i] = result{start: start, end: end, path: path, cost: cost}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, r := range results {
		if r.path == nil {
			fmt.Printf("query %d: %v -> %v: UNREACHABLE\n", i, r.start, r.end)
			continue
		}
		fmt.Printf("query %d: %v -> %v: cost=%d path=%v\n", i, r.start, r.end, r.cost, r.path)
	}

	return nil
}

type result struct {
	start, end costfield.Coord
	path       []costfield.Coord
	cost       uint64
}

func loadField(cfg config.Run) (*costfield.Field, error) {
	data, w, h, err := imageio.LoadGrid(cfg.GridPath)
	if err != nil {
		return nil, err
	}
	if !cfg.Temporal {
		return costfield.New2D(data, w, h)
	}

	// A single-grid load only ever produces a one-frame temporal volume
	// (axis 0 is always time here); real multi-frame fixtures come from
	// stacking cmd/genframes output, which a future -frames flag would
	// wire in (out of scope for this single-grid CLI).
	return costfield.New3D(data, 1, h, w, 0)
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
