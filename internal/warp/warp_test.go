package warp_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldpath/internal/warp"
)

func solidGray(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}

	return img
}

func TestParamsForFrame_Zero(t *testing.T) {
	p := warp.ParamsForFrame(0)
	require.Zero(t, p.AngleRad)
	require.Zero(t, p.TransX)
	require.Zero(t, p.Amp)
	require.Zero(t, p.Phase)
	require.InDelta(t, 0.05, p.Freq, 1e-9)
}

func TestFrame_ZeroFrameIsIdentity(t *testing.T) {
	src := solidGray(20, 20, 100)
	out := warp.Frame(src, warp.ParamsForFrame(0))

	require.Equal(t, src.Bounds(), out.Bounds())
	// A uniform source warped by the identity transform stays uniform
	// in its interior (edges may sample out-of-bounds and go white).
	require.Equal(t, uint8(100), out.GrayAt(10, 10).Y)
}

func TestFrame_SameSizeOutput(t *testing.T) {
	src := solidGray(13, 9, 50)
	out := warp.Frame(src, warp.ParamsForFrame(40))
	require.Equal(t, 13, out.Bounds().Dx())
	require.Equal(t, 9, out.Bounds().Dy())
}
