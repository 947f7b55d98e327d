// Package imageio decodes a cost grid from disk for cmd/pathfind: a
// grayscale PNG, or a plain whitespace-separated text matrix. Both formats
// collapse to the same dense []uint8 row-major buffer costfield.New2D
// expects.
//
// No image-processing or CLI-config library appears anywhere in the
// retrieved corpus, so this package is built entirely on the standard
// library (image/image/png, bufio) — see DESIGN.md for the justification.
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadGrid reads a cost grid from path, dispatching on extension:
// ".png" decodes a grayscale image (luminance -> cost, 0-255); anything
// else is parsed as a whitespace-separated text matrix of small integers
// (one row per line, ragged rows rejected).
func LoadGrid(path string) (data []uint8, w, h int, err error) {
	if strings.HasSuffix(strings.ToLower(path), ".png") {
		return loadPNG(path)
	}

	return loadText(path)
}

func loadPNG(path string) ([]uint8, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	data := make([]uint8, w*h)
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, img.At(x, y))
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			data[y*w+x] = gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y
		}
	}

	return data, w, h, nil
}

func loadText(path string) ([]uint8, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var data []uint8
	w := -1
	h := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if w == -1 {
			w = len(fields)
		} else if len(fields) != w {
			return nil, 0, 0, fmt.Errorf("row %d has %d columns, want %d", h, len(fields), w)
		}
		for _, tok := range fields {
			v, err := strconv.ParseUint(tok, 10, 8)
			if err != nil {
				return nil, 0, 0, fmt.Errorf("parsing cell %q on row %d: %w", tok, h, err)
			}
			data = append(data, uint8(v))
		}
		h++
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, 0, 0, fmt.Errorf("reading %s: %w", path, err)
	}
	if h == 0 {
		return nil, 0, 0, fmt.Errorf("%s contains no rows", path)
	}

	return data, w, h, nil
}
