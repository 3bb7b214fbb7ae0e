package sprite

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// PaletteMethod selects how palette colors are extracted.
type PaletteMethod string

const (
	// PaletteDominant ranks quantized colors by pixel frequency.
	PaletteDominant PaletteMethod = "dominant"
	// PaletteKMeans clusters pixel colors and uses the cluster centers.
	PaletteKMeans PaletteMethod = "kmeans"
)

// ParsePaletteMethod validates a method name from the CLI.
func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch PaletteMethod(s) {
	case PaletteDominant, PaletteKMeans:
		return PaletteMethod(s), nil
	default:
		return "", fmt.Errorf("unknown palette method %q (valid: dominant, kmeans)", s)
	}
}

// PaletteEntry is one extracted palette color.
type PaletteEntry struct {
	Hex string `json:"hex"` // "#RRGGBB"
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
}

// PaletteResult contains the extracted palette, brightest color last.
type PaletteResult struct {
	Method PaletteMethod  `json:"method"`
	Colors []PaletteEntry `json:"colors"`
}

// ExtractPalette extracts up to k representative colors from a sprite.
//
// Fully transparent pixels are ignored so a chroma-keyed sprite reports only
// its own colors, not the removed background. Colors are ordered darkest to
// brightest by relative luminance.
func ExtractPalette(img image.Image, k int, method PaletteMethod) (*PaletteResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("palette size must be >= 1, got %d", k)
	}

	var cols []colorful.Color
	var err error
	switch method {
	case PaletteKMeans:
		cols, err = kmeansPalette(img, k)
	case PaletteDominant, "":
		cols, err = dominantPalette(img, k)
	default:
		return nil, fmt.Errorf("unknown palette method %q", method)
	}
	if err != nil {
		return nil, err
	}

	sortByLuminance(cols)

	result := &PaletteResult{Method: method, Colors: make([]PaletteEntry, 0, len(cols))}
	if result.Method == "" {
		result.Method = PaletteDominant
	}
	for _, c := range cols {
		r, g, b := c.Clamped().RGB255()
		result.Colors = append(result.Colors, PaletteEntry{
			Hex: strings.ToUpper(c.Clamped().Hex()),
			R:   r, G: g, B: b,
		})
	}
	return result, nil
}

func dominantPalette(img image.Image, k int) ([]colorful.Color, error) {
	found := dominantcolor.FindWeight(img, k)
	if len(found) == 0 {
		return nil, fmt.Errorf("no colors found in image")
	}
	cols := make([]colorful.Color, 0, len(found))
	for _, fc := range found {
		c, _ := colorful.MakeColor(fc.RGBA)
		cols = append(cols, c)
	}
	return cols, nil
}

func kmeansPalette(img image.Image, k int) ([]colorful.Color, error) {
	// Subsample large images to keep the clustering tractable.
	const maxSamples = 10000
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	step := 1
	if total > maxSamples {
		step = int(math.Sqrt(float64(total)/float64(maxSamples))) + 1
	}

	var dataset clusters.Observations
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r) / 65535.0,
				float64(g) / 65535.0,
				float64(b) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil, fmt.Errorf("image has no opaque pixels")
	}
	if k > len(dataset) {
		k = len(dataset)
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil {
		return nil, fmt.Errorf("kmeans clustering failed: %w", err)
	}

	cols := make([]colorful.Color, 0, len(cc))
	for _, cluster := range cc {
		center := cluster.Center
		if len(center) < 3 {
			continue
		}
		cols = append(cols, colorful.Color{R: center[0], G: center[1], B: center[2]}.Clamped())
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("kmeans produced no clusters")
	}
	return cols, nil
}

func sortByLuminance(cols []colorful.Color) {
	sort.Slice(cols, func(i, j int) bool {
		return luminance(cols[i]) < luminance(cols[j])
	})
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// PaletteStrip renders a palette as a horizontal strip image, one square
// tile per color, for visual review alongside the sprite.
func PaletteStrip(result *PaletteResult, tileSize int) (*image.NRGBA, error) {
	if result == nil || len(result.Colors) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 32
	}

	strip := image.NewNRGBA(image.Rect(0, 0, tileSize*len(result.Colors), tileSize))
	for i, entry := range result.Colors {
		tile := color.NRGBA{R: entry.R, G: entry.G, B: entry.B, A: 255}
		for y := 0; y < tileSize; y++ {
			for x := i * tileSize; x < (i+1)*tileSize; x++ {
				strip.SetNRGBA(x, y, tile)
			}
		}
	}
	return strip, nil
}
