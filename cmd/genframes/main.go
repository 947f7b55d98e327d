// Command genframes synthesizes a sequence of moving-image frames from a
// single grayscale PNG, for use as a temporal-volume test fixture: stack
// the frames into a []uint8 and hand it to costfield.New3D.
//
// Grounded on original_source/assets/generate_moving_images.py for the
// transform itself (package internal/warp); the CLI shape and
// errgroup-parallel frame rendering follow the teacher corpus's
// cmd/*/main.go convention (github.com/udisondev/la2go).
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fieldpath/internal/warp"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		inputPath = flag.String("input", "", "path to source grayscale PNG")
		outputDir = flag.String("output", "", "directory to write frame_NNN.png files into")
		numFrames = flag.Int("frames", 120, "number of frames to generate")
		workers   = flag.Int("workers", 4, "number of frames to render concurrently")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if *inputPath == "" || *outputDir == "" {
		return fmt.Errorf("both -input and -output are required")
	}
	if *numFrames <= 0 {
		return fmt.Errorf("-frames must be positive, got %d", *numFrames)
	}

	src, err := loadGray(*inputPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", *inputPath, err)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", *outputDir, err)
	}

	slog.Info("generating frames", "count", *numFrames, "workers", *workers, "output", *outputDir)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)

	for t := 0; t < *numFrames; t++ {
		t := t
		g.Go(func() error {
			frame := warp.Frame(src, warp.ParamsForFrame(t))
			path := filepath.Join(*outputDir, fmt.Sprintf("frame_%03d.png", t))
			if err := saveGray(path, frame); err != nil {
				return fmt.Errorf("saving %s: %w", path, err)
			}
			if t%20 == 0 {
				slog.Info("saved frame", "path", path)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("rendering frames: %w", err)
	}

	slog.Info("done")

	return nil
}

func loadGray(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, img.At(x, y))
		}
	}

	return gray, nil
}

func saveGray(path string, img *image.Gray) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
