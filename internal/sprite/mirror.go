package sprite

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Mirror flips an image horizontally. Applying Mirror twice restores the
// original pixels.
func Mirror(img image.Image) *image.NRGBA {
	return imaging.FlipH(img)
}

// directionPairs maps source facing directions to the facing produced by a
// horizontal flip. Artists only author the west-facing set; the east-facing
// set is derived.
var directionPairs = []struct{ src, dst string }{
	{"nw", "ne"},
	{"w", "e"},
	{"sw", "se"},
}

// sheetSuffixes are the frame-count suffixes used by sprite file names:
// "" for a single frame, "-Nf" for an N-frame strip.
var sheetSuffixes = []string{"", "-4f", "-6f", "-3f", "-5f", "-2f"}

// MirroredFile records one sprite mirrored by MirrorDirections.
type MirroredFile struct {
	Source string `json:"source"`
	Output string `json:"output"`
}

// MirrorDirectionsResult reports the files produced by MirrorDirections.
type MirrorDirectionsResult struct {
	Count    int            `json:"count"`
	Mirrored []MirroredFile `json:"mirrored"`
}

// MirrorDirections derives east-facing sprites from west-facing ones for a
// character action.
//
// Sprites follow the naming scheme "<character>-<action>-<direction>[-Nf].png"
// inside sourceDir. For every existing nw/w/sw sprite (single frame or
// N-frame sheet) the horizontally flipped ne/e/se counterpart is written next
// to it. Missing source files are skipped, not errors: most actions only have
// a subset of directions.
func MirrorDirections(sourceDir, character, action string) (*MirrorDirectionsResult, error) {
	result := &MirrorDirectionsResult{}

	for _, pair := range directionPairs {
		for _, suffix := range sheetSuffixes {
			srcName := fmt.Sprintf("%s-%s-%s%s.png", character, action, pair.src, suffix)
			dstName := fmt.Sprintf("%s-%s-%s%s.png", character, action, pair.dst, suffix)
			srcPath := filepath.Join(sourceDir, srcName)

			if _, err := os.Stat(srcPath); err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return nil, fmt.Errorf("failed to stat %s: %w", srcPath, err)
			}

			img, err := Load(srcPath)
			if err != nil {
				return nil, err
			}

			dstPath := filepath.Join(sourceDir, dstName)
			if err := Save(Mirror(img), dstPath); err != nil {
				return nil, err
			}

			result.Mirrored = append(result.Mirrored, MirroredFile{Source: srcName, Output: dstName})
			result.Count++
		}
	}

	return result, nil
}
