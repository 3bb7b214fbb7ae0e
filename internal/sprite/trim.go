package sprite

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// DefaultPadding is the trim padding used when none is given.
const DefaultPadding = 8

// TrimResult contains the trimmed image along with the boxes that were
// detected and applied.
type TrimResult struct {
	Image      *image.NRGBA    `json:"-"`
	ContentBox image.Rectangle `json:"content_box"`
	PaddedBox  image.Rectangle `json:"padded_box"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
}

// Trim crops an image to its content bounding box plus padding on all sides.
//
// Content is any pixel with alpha > 0, so Trim is normally run after
// ChromaKey. The padded box is clamped to the image bounds. A fully
// transparent image is returned unchanged (there is no content to trim to).
func Trim(img image.Image, padding int) (*TrimResult, error) {
	if padding < 0 {
		return nil, fmt.Errorf("padding must be >= 0, got %d", padding)
	}

	src := imaging.Clone(img)
	bounds := src.Bounds()

	content, ok := contentBox(src)
	if !ok {
		return &TrimResult{
			Image:      src,
			ContentBox: image.Rectangle{},
			PaddedBox:  bounds,
			Width:      bounds.Dx(),
			Height:     bounds.Dy(),
		}, nil
	}

	padded := image.Rect(
		max(bounds.Min.X, content.Min.X-padding),
		max(bounds.Min.Y, content.Min.Y-padding),
		min(bounds.Max.X, content.Max.X+padding),
		min(bounds.Max.Y, content.Max.Y+padding),
	)

	trimmed := imaging.Crop(src, padded)
	return &TrimResult{
		Image:      trimmed,
		ContentBox: content,
		PaddedBox:  padded,
		Width:      trimmed.Bounds().Dx(),
		Height:     trimmed.Bounds().Dy(),
	}, nil
}

// contentBox returns the bounding box of all pixels with alpha > 0.
// ok is false when every pixel is fully transparent.
func contentBox(img *image.NRGBA) (box image.Rectangle, ok bool) {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.Pix[row+(x-bounds.Min.X)*4+3] > 0 {
				if x < minX {
					minX = x
				}
				if x >= maxX {
					maxX = x + 1
				}
				if y < minY {
					minY = y
				}
				maxY = y + 1
				ok = true
			}
		}
	}
	if !ok {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX, maxY), true
}
