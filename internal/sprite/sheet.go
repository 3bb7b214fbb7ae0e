package sprite

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// SliceResult reports the frames produced from a sprite sheet.
type SliceResult struct {
	FrameCount  int      `json:"frame_count"`
	FrameWidth  int      `json:"frame_width"`
	FrameHeight int      `json:"frame_height"`
	Paths       []string `json:"paths"`
}

// SliceSheet slices a horizontal sprite strip into frameCount equal-width
// frames and writes each as PNG into outputDir.
//
// The frame width is sheetWidth / frameCount (integer division); a sheet
// whose width is not an exact multiple loses the remainder columns on the
// right, matching how strips are authored. Frames are named
// "<baseName>_fNNN.png" with a zero-padded frame index starting at 0.
// The output directory is created if it does not exist.
func SliceSheet(sheet image.Image, outputDir, baseName string, frameCount int) (*SliceResult, error) {
	bounds := sheet.Bounds()
	if frameCount < 1 {
		return nil, fmt.Errorf("frame count must be >= 1, got %d", frameCount)
	}
	if frameCount > bounds.Dx() {
		return nil, fmt.Errorf("frame count %d exceeds sheet width %d", frameCount, bounds.Dx())
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	frameWidth := bounds.Dx() / frameCount
	frameHeight := bounds.Dy()

	result := &SliceResult{
		FrameCount:  frameCount,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		Paths:       make([]string, 0, frameCount),
	}

	for i := 0; i < frameCount; i++ {
		rect := image.Rect(
			bounds.Min.X+i*frameWidth,
			bounds.Min.Y,
			bounds.Min.X+(i+1)*frameWidth,
			bounds.Max.Y,
		)
		frame := imaging.Crop(sheet, rect)

		path := filepath.Join(outputDir, fmt.Sprintf("%s_f%03d.png", baseName, i))
		if err := Save(frame, path); err != nil {
			return nil, fmt.Errorf("failed to save frame %d: %w", i, err)
		}
		result.Paths = append(result.Paths, path)
	}

	return result, nil
}
