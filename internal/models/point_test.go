package models

import (
	"math"
	"testing"
)

// TestPointArithmetic verifies the componentwise vector operations
func TestPointArithmetic(t *testing.T) {
	p := Point{X: 3, Y: -2}
	q := Point{X: 1, Y: 5}

	sum := p.Add(q)
	if sum.X != 4 || sum.Y != 3 {
		t.Errorf("Expected sum (4, 3), got (%v, %v)", sum.X, sum.Y)
	}

	diff := p.Sub(q)
	if diff.X != 2 || diff.Y != -7 {
		t.Errorf("Expected difference (2, -7), got (%v, %v)", diff.X, diff.Y)
	}

	scaled := p.Scale(2)
	if scaled.X != 6 || scaled.Y != -4 {
		t.Errorf("Expected scaled (6, -4), got (%v, %v)", scaled.X, scaled.Y)
	}
}

// TestPointDistance verifies Euclidean distance on a 3-4-5 triangle
func TestPointDistance(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 3, Y: 4}

	if d := p.Distance(q); math.Abs(d-5) > 1e-12 {
		t.Errorf("Expected distance 5, got %v", d)
	}

	if d2 := p.DistanceSquared(q); math.Abs(d2-25) > 1e-12 {
		t.Errorf("Expected squared distance 25, got %v", d2)
	}
}

// TestPointComplexRoundTrip verifies the complex-number reinterpretation
// used by the spectral decomposition
func TestPointComplexRoundTrip(t *testing.T) {
	p := Point{X: -1.5, Y: 2.25}

	c := p.Complex()
	if real(c) != -1.5 || imag(c) != 2.25 {
		t.Errorf("Expected complex (-1.5+2.25i), got %v", c)
	}

	back := PointFromComplex(c)
	if back != p {
		t.Errorf("Expected round trip to return %v, got %v", p, back)
	}
}

// TestPixelPoint verifies the pixel-to-point conversion
func TestPixelPoint(t *testing.T) {
	px := Pixel{X: 3, Y: 4}
	p := px.Point()

	if p.X != 3 || p.Y != 4 {
		t.Errorf("Expected point (3, 4), got (%v, %v)", p.X, p.Y)
	}
}
