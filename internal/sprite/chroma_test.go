package sprite

import (
	"image/color"
	"testing"
)

func TestChromaKey_CoreBecomesTransparent(t *testing.T) {
	img := createSpriteOnBackground(20, 5, magenta, blue)

	result, err := ChromaKey(img, Magenta, 60)
	if err != nil {
		t.Fatalf("ChromaKey failed: %v", err)
	}

	// Background corner must be fully transparent, all channels zeroed.
	if got := pixelAt(t, result.Image, 0, 0); got != transparent {
		t.Errorf("background pixel: got %v, want fully transparent", got)
	}

	// Sprite center must be untouched.
	if got := pixelAt(t, result.Image, 10, 10); got != blue {
		t.Errorf("sprite pixel: got %v, want %v", got, blue)
	}

	wantTransparent := 20*20 - 10*10
	if result.TransparentPixels != wantTransparent {
		t.Errorf("TransparentPixels: got %d, want %d", result.TransparentPixels, wantTransparent)
	}
}

func TestChromaKey_EdgePixelsFadeOut(t *testing.T) {
	// (255,80,255) is outside the core band (g >= tolerance) but within
	// twice the tolerance by RGB distance: d = 80, limit = 120.
	nearMagenta := color.NRGBA{R: 255, G: 80, B: 255, A: 255}
	img := createSolidImage(4, 4, nearMagenta)

	result, err := ChromaKey(img, Magenta, 60)
	if err != nil {
		t.Fatalf("ChromaKey failed: %v", err)
	}

	got := pixelAt(t, result.Image, 1, 1)

	// alpha = d/limit * 255 = 80/120*255 = 170, allow rounding slack
	wantAlpha := 170
	if diff := int(got.A) - wantAlpha; diff < -1 || diff > 1 {
		t.Errorf("edge alpha: got %d, want ~%d", got.A, wantAlpha)
	}

	// Green raised by 30 to remove magenta spill.
	if got.G != 110 {
		t.Errorf("spill-corrected green: got %d, want 110", got.G)
	}

	if result.EdgePixels != 16 {
		t.Errorf("EdgePixels: got %d, want 16", result.EdgePixels)
	}
}

func TestChromaKey_DistantColorsUntouched(t *testing.T) {
	tests := []struct {
		name string
		c    color.NRGBA
	}{
		{"blue", blue},
		{"red is within edge distance of nothing", color.NRGBA{R: 30, G: 200, B: 40, A: 255}},
		{"white", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createSolidImage(3, 3, tt.c)
			result, err := ChromaKey(img, Magenta, 60)
			if err != nil {
				t.Fatalf("ChromaKey failed: %v", err)
			}
			if got := pixelAt(t, result.Image, 1, 1); got != tt.c {
				t.Errorf("pixel changed: got %v, want %v", got, tt.c)
			}
			if result.TransparentPixels != 0 || result.EdgePixels != 0 {
				t.Errorf("counts: got (%d,%d), want (0,0)",
					result.TransparentPixels, result.EdgePixels)
			}
		})
	}
}

func TestChromaKey_SourceNotModified(t *testing.T) {
	img := createSolidImage(4, 4, magenta)

	if _, err := ChromaKey(img, Magenta, 60); err != nil {
		t.Fatalf("ChromaKey failed: %v", err)
	}

	if got := img.NRGBAAt(0, 0); got != magenta {
		t.Errorf("source image was modified: got %v, want %v", got, magenta)
	}
}

func TestChromaKey_ZeroToleranceUsesDefault(t *testing.T) {
	img := createSolidImage(2, 2, magenta)

	result, err := ChromaKey(img, Magenta, 0)
	if err != nil {
		t.Fatalf("ChromaKey failed: %v", err)
	}
	if result.Tolerance != DefaultTolerance {
		t.Errorf("tolerance: got %d, want %d", result.Tolerance, DefaultTolerance)
	}
}

func TestChromaKey_InvalidTolerance(t *testing.T) {
	img := createSolidImage(2, 2, magenta)

	for _, tol := range []int{-1, 256, 1000} {
		if _, err := ChromaKey(img, Magenta, tol); err == nil {
			t.Errorf("ChromaKey should fail for tolerance %d", tol)
		}
	}
}

func TestChromaKey_CustomKeyColor(t *testing.T) {
	green := color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	img := createSpriteOnBackground(10, 3, green, red)

	result, err := ChromaKey(img, green, 60)
	if err != nil {
		t.Fatalf("ChromaKey failed: %v", err)
	}

	if got := pixelAt(t, result.Image, 0, 0); got != transparent {
		t.Errorf("green background pixel: got %v, want transparent", got)
	}
	if got := pixelAt(t, result.Image, 5, 5); got != red {
		t.Errorf("sprite pixel: got %v, want %v", got, red)
	}
	if result.KeyColor != "#00FF00" {
		t.Errorf("KeyColor: got %s, want #00FF00", result.KeyColor)
	}
}

func TestDetectKeyColor(t *testing.T) {
	// Background dominates the canvas, so it should be detected.
	img := createSpriteOnBackground(40, 16, magenta, blue)

	key := DetectKeyColor(img)

	// dominantcolor quantizes internally; accept anything clearly magenta.
	if key.R < 200 || key.G > 60 || key.B < 200 {
		t.Errorf("detected key %v, want magenta-like", key)
	}
}
