package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(SpriteSpec{
		Character: "an armored knight with a halberd",
		Pose:      "West-facing walk",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "CHARACTER: an armored knight with a halberd")
	assert.Contains(t, prompt, "POSE: West-facing walk")
	assert.Contains(t, prompt, "#FF00FF")
	assert.Contains(t, prompt, "pixel art")
	assert.Contains(t, prompt, "no text")
}

func TestBuildPrompt_Defaults(t *testing.T) {
	prompt, err := BuildPrompt(SpriteSpec{Character: "a slime"})
	require.NoError(t, err)

	assert.Contains(t, prompt, "South-facing idle")
	assert.Contains(t, prompt, "solid #FF00FF background")
}

func TestBuildPrompt_CustomBackground(t *testing.T) {
	prompt, err := BuildPrompt(SpriteSpec{
		Character:     "a slime",
		BackgroundHex: "#00FF00",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "solid #00FF00 background")
	assert.NotContains(t, prompt, "#FF00FF")
}

func TestBuildPrompt_RequiresCharacter(t *testing.T) {
	for _, character := range []string{"", "   ", "\n\t"} {
		_, err := BuildPrompt(SpriteSpec{Character: character})
		assert.Error(t, err, "character %q should be rejected", character)
	}
}
