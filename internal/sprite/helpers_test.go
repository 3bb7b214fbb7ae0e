package sprite

import (
	"image"
	"image/color"
	"testing"
)

// createSolidImage creates an in-memory NRGBA image filled with one color.
func createSolidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// createSpriteOnBackground creates a background-filled image with a centered
// square of the given color covering [inset, size-inset) in both axes.
func createSpriteOnBackground(size, inset int, bg, fg color.NRGBA) *image.NRGBA {
	img := createSolidImage(size, size, bg)
	for y := inset; y < size-inset; y++ {
		for x := inset; x < size-inset; x++ {
			img.SetNRGBA(x, y, fg)
		}
	}
	return img
}

var (
	magenta     = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	blue        = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	red         = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	transparent = color.NRGBA{}
)

func pixelAt(t *testing.T, img *image.NRGBA, x, y int) color.NRGBA {
	t.Helper()
	return img.NRGBAAt(x, y)
}

func rgbaWithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
