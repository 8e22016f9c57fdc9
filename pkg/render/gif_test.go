package render

import (
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"fouriersketch/pkg/epicycle"
)

// TestAnimationOptionsDefaults verifies zero-value fallback
func TestAnimationOptionsDefaults(t *testing.T) {
	opts := AnimationOptions{}.withDefaults()
	def := DefaultAnimationOptions()

	if opts.Frames != def.Frames || opts.Width != def.Width || opts.Height != def.Height {
		t.Errorf("Expected default dimensions, got %+v", opts)
	}
	if opts.Workers < 1 {
		t.Errorf("Expected at least one worker, got %d", opts.Workers)
	}

	// Explicit values survive
	opts = AnimationOptions{Frames: 24, Width: 100}.withDefaults()
	if opts.Frames != 24 || opts.Width != 100 {
		t.Errorf("Expected explicit values to survive, got %+v", opts)
	}
	if opts.Height != def.Height {
		t.Errorf("Expected the default height to fill in, got %d", opts.Height)
	}
}

// TestSaveGIF renders a short animation and decodes it back
func TestSaveGIF(t *testing.T) {
	series := squareSeries(t)
	file := filepath.Join(t.TempDir(), "square.gif")

	animator := NewAnimator(AnimationOptions{
		Frames:      12,
		Width:       80,
		Height:      60,
		TrailPoints: 5,
		DelayCS:     3,
		Workers:     3,
	})

	var progressCalls int
	animator.SetProgressCallback(func(completed, total int, message string) {
		if total > 0 {
			progressCalls++
		}
	})

	if err := animator.SaveGIF(series, file); err != nil {
		t.Fatalf("SaveGIF failed: %v", err)
	}

	f, err := os.Open(file)
	if err != nil {
		t.Fatalf("Failed to open rendered GIF: %v", err)
	}
	defer f.Close()

	decoded, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("Failed to decode rendered GIF: %v", err)
	}

	if len(decoded.Image) != 12 {
		t.Errorf("Expected 12 frames, got %d", len(decoded.Image))
	}
	for i, frame := range decoded.Image {
		b := frame.Bounds()
		if b.Dx() != 80 || b.Dy() != 60 {
			t.Errorf("Frame %d: expected 80x60, got %dx%d", i, b.Dx(), b.Dy())
		}
	}
	for i, d := range decoded.Delay {
		if d != 3 {
			t.Errorf("Frame %d: expected delay 3, got %d", i, d)
		}
	}

	if progressCalls != 12 {
		t.Errorf("Expected 12 progress updates, got %d", progressCalls)
	}
}

// TestSaveGIFDrawsInk verifies that frames contain non-background pixels
func TestSaveGIFDrawsInk(t *testing.T) {
	series := squareSeries(t)
	file := filepath.Join(t.TempDir(), "ink.gif")

	animator := NewAnimator(AnimationOptions{Frames: 4, Width: 64, Height: 64, Workers: 1})
	animator.SetProgressCallback(func(completed, total int, message string) {})

	if err := animator.SaveGIF(series, file); err != nil {
		t.Fatalf("SaveGIF failed: %v", err)
	}

	f, err := os.Open(file)
	if err != nil {
		t.Fatalf("Failed to open rendered GIF: %v", err)
	}
	defer f.Close()

	decoded, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("Failed to decode rendered GIF: %v", err)
	}

	for i, frame := range decoded.Image {
		ink := 0
		for _, px := range frame.Pix {
			if px != colorBackground {
				ink++
			}
		}
		if ink == 0 {
			t.Errorf("Frame %d contains no drawing", i)
		}
	}
}

// TestSaveGIFEmptySeries verifies rejection of an empty series
func TestSaveGIFEmptySeries(t *testing.T) {
	animator := NewAnimator(AnimationOptions{Frames: 4})

	err := animator.SaveGIF(epicycle.Series{}, filepath.Join(t.TempDir(), "empty.gif"))
	if err == nil {
		t.Error("Expected an error for an empty series")
	}
}
