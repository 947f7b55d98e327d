// Package warp synthesizes one frame of a moving-image sequence from a
// single source grayscale image, by inverse-mapping each destination pixel
// back to a source coordinate under a combined rotation, translation and
// sinusoidal ripple, then bilinearly resampling.
//
// Grounded on original_source/assets/generate_moving_images.py: the inverse
// mapping convention (destination pixel samples from the
// inverse-transformed source coordinate) and the per-frame parameters are
// preserved exactly; the resampling kernel is bilinear rather than the
// cubic spline of the Python original (see DESIGN.md).
package warp

import (
	"image"
	"image/color"
	"math"
)

// Params holds the per-frame transform parameters computed from a frame
// index t, matching the Python original's literals.
type Params struct {
	AngleRad float64
	TransX   float64
	Freq     float64
	Phase    float64
	Amp      float64
}

// ParamsForFrame computes the transform for frame t: 0.5 degrees of CCW
// rotation and 0.5px of rightward translation per frame, plus a ripple
// whose amplitude itself oscillates with t.
func ParamsForFrame(t int) Params {
	ft := float64(t)

	return Params{
		AngleRad: (0.5 * ft) * math.Pi / 180,
		TransX:   0.5 * ft,
		Freq:     0.05,
		Phase:    0.2 * ft,
		Amp:      2.0 * math.Sin(ft*0.05),
	}
}

// Frame renders one warped frame of src under p into a new *image.Gray of
// the same bounds. Out-of-source samples are filled white (255).
func Frame(src *image.Gray, p Params) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	cx, cy := float64(w)/2.0, float64(h)/2.0

	cosA, sinA := math.Cos(p.AngleRad), math.Sin(p.AngleRad)

	dst := image.NewGray(bounds)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			coordX := float64(x) - cx
			coordY := float64(y) - cy

			rotX := coordX*cosA + coordY*sinA
			rotY := -coordX*sinA + coordY*cosA

			srcX := rotX + cx - p.TransX
			srcY := rotY + cy

			srcX += p.Amp * math.Sin(srcY*p.Freq+p.Phase)
			srcY += p.Amp * math.Cos(srcX*p.Freq+p.Phase)

			dst.SetGray(bounds.Min.X+x, bounds.Min.Y+y, sampleBilinear(src, srcX, srcY))
		}
	}

	return dst
}

// sampleBilinear samples src at floating-point (x, y), returning white
// (255) for any sample whose 2x2 neighborhood falls outside src's bounds.
func sampleBilinear(src *image.Gray, x, y float64) color.Gray {
	bounds := src.Bounds()
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	x1 := x0 + 1
	y1 := y0 + 1

	if x0 < float64(bounds.Min.X) || y0 < float64(bounds.Min.Y) ||
		x1 >= float64(bounds.Max.X) || y1 >= float64(bounds.Max.Y) {
		return color.Gray{Y: 255}
	}

	fx := x - x0
	fy := y - y0

	ix0, iy0 := int(x0), int(y0)
	ix1, iy1 := int(x1), int(y1)

	v00 := float64(src.GrayAt(ix0, iy0).Y)
	v10 := float64(src.GrayAt(ix1, iy0).Y)
	v01 := float64(src.GrayAt(ix0, iy1).Y)
	v11 := float64(src.GrayAt(ix1, iy1).Y)

	top := v00*(1-fx) + v10*fx
	bottom := v01*(1-fx) + v11*fx
	v := top*(1-fy) + bottom*fy

	return color.Gray{Y: uint8(math.Round(clamp(v, 0, 255)))}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
