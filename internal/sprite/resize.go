package sprite

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ResizeResult contains the resampled image and its final dimensions.
type ResizeResult struct {
	Image  *image.NRGBA `json:"-"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
}

// ResizeNearest resamples an image to exactly width x height using
// nearest-neighbor interpolation. Nearest-neighbor keeps pixel-art edges
// hard; any smoothing filter would blur them.
func ResizeNearest(img image.Image, width, height int) (*ResizeResult, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target dimensions %dx%d: both must be positive", width, height)
	}

	resized := imaging.Resize(img, width, height, imaging.NearestNeighbor)
	return &ResizeResult{
		Image:  resized,
		Width:  resized.Bounds().Dx(),
		Height: resized.Bounds().Dy(),
	}, nil
}
