package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestWriteSVG verifies the document structure of the rendered still
func TestWriteSVG(t *testing.T) {
	series := squareSeries(t)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, squarePath(), series, 64); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, `<?xml version="1.0"?>`) {
		t.Error("Expected the XML prolog at the start of the document")
	}
	if !strings.Contains(out, "<svg") || !strings.HasSuffix(out, "</svg>\n") {
		t.Error("Expected an <svg> document")
	}
	if got := strings.Count(out, "<polyline"); got != 2 {
		t.Errorf("Expected 2 polylines (contour and reconstruction), got %d", got)
	}

	// Two visible circles from the square's two nonzero coefficients, plus
	// the pen tip dot
	if got := strings.Count(out, "<circle"); got != 3 {
		t.Errorf("Expected 3 circles, got %d", got)
	}
}

// errWriter fails after a fixed number of bytes
type errWriter struct {
	remaining int
}

func (w *errWriter) Write(p []byte) (int, error) {
	if len(p) > w.remaining {
		n := w.remaining
		w.remaining = 0
		return n, errors.New("write failed")
	}
	w.remaining -= len(p)
	return len(p), nil
}

// TestWriteSVGPropagatesWriteError verifies the sticky error path
func TestWriteSVGPropagatesWriteError(t *testing.T) {
	series := squareSeries(t)

	err := WriteSVG(&errWriter{remaining: 16}, squarePath(), series, 64)
	if err == nil {
		t.Error("Expected the writer's error to surface")
	}
}

// TestWriteSVGDefaultSamples verifies the fallback sampling density
func TestWriteSVGDefaultSamples(t *testing.T) {
	series := squareSeries(t)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, squarePath(), series, 0); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected output with the default sample count")
	}
}
