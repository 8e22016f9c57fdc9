package render

import (
	"math"
	"testing"

	"fouriersketch/internal/models"
	"fouriersketch/pkg/epicycle"
)

// squarePath is the unit square contour used across the renderer tests
func squarePath() []models.Point {
	return []models.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// squareSeries decomposes the square path and keeps every term
func squareSeries(t *testing.T) epicycle.Series {
	t.Helper()
	spectrum, err := epicycle.Decompose(squarePath(), epicycle.Symmetric)
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	return spectrum.Select(epicycle.SelectOptions{})
}

// TestBounds verifies the bounding box over multiple point slices
func TestBounds(t *testing.T) {
	a := []models.Point{{X: -2, Y: 1}, {X: 3, Y: 5}}
	b := []models.Point{{X: 0, Y: -4}}

	minX, minY, maxX, maxY := bounds(a, b)
	if minX != -2 || minY != -4 || maxX != 3 || maxY != 5 {
		t.Errorf("Expected box (-2, -4)-(3, 5), got (%v, %v)-(%v, %v)", minX, minY, maxX, maxY)
	}

	minX, minY, maxX, maxY = bounds()
	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Errorf("Expected the zero box for empty input, got (%v, %v)-(%v, %v)", minX, minY, maxX, maxY)
	}
}

// TestFit verifies aspect-preserving scaling and centering
func TestFit(t *testing.T) {
	// World box 10x5 onto a 100x100 canvas with no margin: the width limits
	// the scale
	m := fit(0, 0, 10, 5, 100, 100, 0)
	if math.Abs(m.scale-10) > 1e-9 {
		t.Errorf("Expected scale 10, got %v", m.scale)
	}

	// The world center maps to the canvas center
	x, y := m.apply(models.Point{X: 5, Y: 2.5})
	if math.Abs(x-50) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Errorf("Expected the world center at (50, 50), got (%v, %v)", x, y)
	}

	// Corners stay inside the canvas
	for _, p := range []models.Point{{X: 0, Y: 0}, {X: 10, Y: 5}} {
		x, y := m.apply(p)
		if x < 0 || x > 100 || y < 0 || y > 100 {
			t.Errorf("Expected %v to map inside the canvas, got (%v, %v)", p, x, y)
		}
	}
}

// TestFitDegenerateBox verifies that a single-point box stays finite
func TestFitDegenerateBox(t *testing.T) {
	m := fit(3, 3, 3, 3, 200, 100, 0.05)

	if math.IsInf(m.scale, 0) || math.IsNaN(m.scale) || m.scale <= 0 {
		t.Fatalf("Expected a finite positive scale, got %v", m.scale)
	}

	x, y := m.apply(models.Point{X: 3, Y: 3})
	if math.Abs(x-100) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Errorf("Expected the degenerate point at the canvas center, got (%v, %v)", x, y)
	}
}

// TestFitMargin verifies that the margin shrinks the used area
func TestFitMargin(t *testing.T) {
	tight := fit(0, 0, 10, 10, 100, 100, 0)
	padded := fit(0, 0, 10, 10, 100, 100, 0.1)

	if padded.scale >= tight.scale {
		t.Errorf("Expected the margin to reduce scale, got %v >= %v", padded.scale, tight.scale)
	}
	if math.Abs(padded.scale-8) > 1e-9 {
		t.Errorf("Expected scale 8 with a 10%% margin, got %v", padded.scale)
	}
}
