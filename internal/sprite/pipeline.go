package sprite

import (
	"fmt"
	"image"
)

// PipelineOptions control the full post-processing pipeline.
type PipelineOptions struct {
	TargetWidth  int
	TargetHeight int
	Tolerance    int // 0 selects DefaultTolerance
	Padding      int
}

// PipelineResult reports each stage of the full pipeline.
type PipelineResult struct {
	Image     *image.NRGBA     `json:"-"`
	ChromaKey *ChromaKeyResult `json:"chroma_key"`
	Trim      *TrimResult      `json:"trim"`
	Resize    *ResizeResult    `json:"resize"`
}

// Pipeline runs the complete post-processing chain over a raw generated
// sprite: chroma key, trim to content, nearest-neighbor resize to the target
// dimensions. Stages are composed in memory; only the final image is meant
// to be written to disk.
func Pipeline(img image.Image, opts PipelineOptions) (*PipelineResult, error) {
	keyed, err := ChromaKey(img, Magenta, opts.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("chroma key stage: %w", err)
	}

	trimmed, err := Trim(keyed.Image, opts.Padding)
	if err != nil {
		return nil, fmt.Errorf("trim stage: %w", err)
	}

	resized, err := ResizeNearest(trimmed.Image, opts.TargetWidth, opts.TargetHeight)
	if err != nil {
		return nil, fmt.Errorf("resize stage: %w", err)
	}

	return &PipelineResult{
		Image:     resized.Image,
		ChromaKey: keyed,
		Trim:      trimmed,
		Resize:    resized,
	}, nil
}
