package render

import (
	"testing"

	"fouriersketch/internal/models"
)

// TestProjectorAspect verifies the doubled horizontal scale when the
// terminal height is the limiting dimension
func TestProjectorAspect(t *testing.T) {
	// A 10x10 world in a wide terminal: rows limit the scale.
	pr := newProjector(0, 0, 10, 10, 200, 21)

	if pr.sy != 2.0 {
		t.Errorf("Expected vertical scale 2.0, got %f", pr.sy)
	}
	if pr.sx != 2*pr.sy {
		t.Errorf("Expected horizontal scale %f, got %f", 2*pr.sy, pr.sx)
	}
}

// TestProjectorWidthLimited verifies the clamp when columns run out first
func TestProjectorWidthLimited(t *testing.T) {
	// A 10x10 world in a narrow terminal: columns limit the scale.
	pr := newProjector(0, 0, 10, 10, 21, 100)

	if pr.sx != 2.0 {
		t.Errorf("Expected horizontal scale 2.0, got %f", pr.sx)
	}
	if pr.sy != pr.sx/2 {
		t.Errorf("Expected vertical scale %f, got %f", pr.sx/2, pr.sy)
	}
}

// TestProjectorCentering verifies that the world center lands on the
// terminal center and all corners stay inside the cell grid
func TestProjectorCentering(t *testing.T) {
	cols, rows := 120, 40
	pr := newProjector(-5, -5, 5, 5, cols, rows)

	cx, cy := pr.cell(models.Point{X: 0, Y: 0})
	if cx < cols/2-1 || cx > cols/2+1 {
		t.Errorf("Expected center column near %d, got %d", cols/2, cx)
	}
	if cy < rows/2-1 || cy > rows/2+1 {
		t.Errorf("Expected center row near %d, got %d", rows/2, cy)
	}

	corners := []models.Point{
		{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5},
	}
	for _, c := range corners {
		x, y := pr.cell(c)
		if x < 0 || x >= cols || y < 0 || y >= rows {
			t.Errorf("Corner %+v mapped outside the grid: (%d, %d)", c, x, y)
		}
	}
}

// TestProjectorDegenerateBox verifies that a single point projects to a
// finite cell instead of dividing by zero
func TestProjectorDegenerateBox(t *testing.T) {
	pr := newProjector(3, 3, 3, 3, 80, 24)

	x, y := pr.cell(models.Point{X: 3, Y: 3})
	if x < 0 || x >= 80 || y < 0 || y >= 24 {
		t.Errorf("Degenerate point mapped outside the grid: (%d, %d)", x, y)
	}
}
