package sprite

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/cenkalti/dominantcolor"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultTolerance is the chroma key tolerance used when none is given.
// It matches the value the art direction settled on for generated sprites.
const DefaultTolerance = 60

// Magenta is the canonical background color for generated sprites (#FF00FF).
var Magenta = color.NRGBA{R: 255, G: 0, B: 255, A: 255}

// ChromaKeyResult reports what the chroma key pass did to an image.
type ChromaKeyResult struct {
	Image             *image.NRGBA `json:"-"`
	KeyColor          string       `json:"key_color"` // Hex "#RRGGBB"
	Tolerance         int          `json:"tolerance"`
	TransparentPixels int          `json:"transparent_pixels"`
	EdgePixels        int          `json:"edge_pixels"`
}

// ChromaKey removes a uniform background color, producing true alpha
// transparency.
//
// Pixels inside the core of the key color (each channel within tolerance of
// the key) become fully transparent. Pixels near the key color, within twice
// the tolerance by Euclidean RGB distance, get partial alpha proportional to
// that distance so anti-aliased sprite edges fade out instead of leaving a
// colored fringe. For the magenta key, edge pixels also get their green
// channel raised to counter magenta spill.
//
// Parameters:
//   - img: The source image. It is not modified; the result holds a new NRGBA.
//   - key: The background color to remove. Use Magenta for generated sprites.
//   - tolerance: Per-channel threshold, 1-255. Zero selects DefaultTolerance.
func ChromaKey(img image.Image, key color.NRGBA, tolerance int) (*ChromaKeyResult, error) {
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}
	if tolerance < 0 || tolerance > 255 {
		return nil, fmt.Errorf("tolerance %d outside valid range 1-255", tolerance)
	}

	dst := imaging.Clone(img)
	keyCol := colorful.Color{R: float64(key.R) / 255, G: float64(key.G) / 255, B: float64(key.B) / 255}
	edgeLimit := float64(tolerance * 2)

	result := &ChromaKeyResult{
		Image:     dst,
		KeyColor:  fmt.Sprintf("#%02X%02X%02X", key.R, key.G, key.B),
		Tolerance: tolerance,
	}

	bounds := dst.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			off := dst.PixOffset(x, y)
			r := dst.Pix[off]
			g := dst.Pix[off+1]
			b := dst.Pix[off+2]

			if inCore(r, g, b, key, tolerance) {
				dst.Pix[off] = 0
				dst.Pix[off+1] = 0
				dst.Pix[off+2] = 0
				dst.Pix[off+3] = 0
				result.TransparentPixels++
				continue
			}

			// DistanceRgb works on 0-1 components; scale back to the
			// 0-255 space the tolerance is expressed in.
			c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
			dist := c.DistanceRgb(keyCol) * 255
			if dist < edgeLimit {
				alpha := math.Min(dist/edgeLimit*255, 255)
				dst.Pix[off+3] = uint8(alpha)
				dst.Pix[off+1] = clampByte(int(g) + 30) // spill removal
				result.EdgePixels++
			}
		}
	}

	return result, nil
}

// DetectKeyColor finds the background color of a sprite by dominant-color
// analysis. Generated sprites fill the canvas with the key color, so the
// most frequent color is the background.
func DetectKeyColor(img image.Image) color.NRGBA {
	c := dominantcolor.Find(img)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// inCore reports whether (r,g,b) lies inside the per-channel core band of
// the key color. For the magenta key this reduces to the classic
// high-R/low-G/high-B test.
func inCore(r, g, b uint8, key color.NRGBA, tolerance int) bool {
	return channelNear(r, key.R, tolerance) &&
		channelNear(g, key.G, tolerance) &&
		channelNear(b, key.B, tolerance)
}

func channelNear(v, target uint8, tolerance int) bool {
	d := int(v) - int(target)
	if d < 0 {
		d = -d
	}
	return d < tolerance
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
