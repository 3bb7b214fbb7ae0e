package gen

import (
	"fmt"
	"strings"
)

// SpriteSpec describes the sprite to request from the model. The prompt it
// renders encodes the pipeline's contract: a single character on a solid
// magenta background that the chroma key stage removes afterwards.
type SpriteSpec struct {
	// Character is the free-form character description.
	Character string

	// Pose describes facing and stance, e.g. "South-facing idle".
	Pose string

	// BackgroundHex is the solid background color. Defaults to magenta,
	// the key color the post-processing stage expects.
	BackgroundHex string
}

const styleBlock = `STYLE: premium HD pixel art, high resolution, detailed textures, ` +
	`rich color depth, smooth color gradients with anti-aliased edges, ` +
	`atmospheric lighting with bloom and glow effects, high detail shading, ` +
	`NOT chunky retro 16-bit pixels, NOT flat shading, NOT low-res, ` +
	`light source from upper-left, shadows falling to lower-right, ` +
	`no text, no writing, no letters, no words.`

// BuildPrompt renders the full generation prompt for a sprite.
func BuildPrompt(spec SpriteSpec) (string, error) {
	if strings.TrimSpace(spec.Character) == "" {
		return "", fmt.Errorf("character description is required")
	}
	bg := spec.BackgroundHex
	if bg == "" {
		bg = "#FF00FF"
	}
	pose := spec.Pose
	if pose == "" {
		pose = "South-facing idle (facing toward the camera/viewer)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a single character sprite on a solid %s background.\n\n", bg)
	fmt.Fprintf(&b, "CHARACTER: %s\n\n", strings.TrimSpace(spec.Character))
	fmt.Fprintf(&b, "POSE: %s\n\n", pose)
	b.WriteString(styleBlock)
	b.WriteString("\n\nCOMPOSITION:\n")
	fmt.Fprintf(&b, "- Single character centered on canvas\n")
	fmt.Fprintf(&b, "- Solid %s background filling the entire image\n", bg)
	b.WriteString("- No ground plane, no shadows on ground, no environment\n")
	b.WriteString("- Character should fill roughly 60-70% of the canvas height\n")
	fmt.Fprintf(&b, "- Clean edges between character and %s background\n", bg)

	return b.String(), nil
}
