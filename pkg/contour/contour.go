// Package contour turns a binary edge mask into an ordered traversal path.
// The mask carries no ordering information, so the package first collects
// the foreground pixels and then sequences them with a greedy
// nearest-neighbor walk that approximates the original contour's adjacency.
package contour

import (
	"errors"

	"fouriersketch/internal/models"
)

// ErrEmptyMask is returned when the mask contains no foreground pixels.
// Nothing downstream can operate on an empty point set, so this surfaces
// before any other stage runs.
var ErrEmptyMask = errors.New("mask contains no foreground pixels")

// Points collects the foreground pixel coordinates of the mask in scan
// order (row-major, top to bottom). The result is a set: the mask cannot
// contain duplicate coordinates by construction.
//
// Returns ErrEmptyMask when no pixel is set.
func Points(m *models.Mask) ([]models.Pixel, error) {
	pts := make([]models.Pixel, 0, 256)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Bits[y*m.Width+x] {
				pts = append(pts, models.Pixel{X: x, Y: y})
			}
		}
	}
	if len(pts) == 0 {
		return nil, ErrEmptyMask
	}
	return pts, nil
}

// Recenter converts pixels to floating-point points relative to the given
// origin. The pipeline passes the image center so the traced shape ends up
// centered around (0, 0), which keeps epicycle radii proportional to the
// shape rather than to its position in the frame.
func Recenter(pixels []models.Pixel, origin models.Point) []models.Point {
	out := make([]models.Point, len(pixels))
	for i, p := range pixels {
		out[i] = p.Point().Sub(origin)
	}
	return out
}

// scanBefore reports whether a precedes b in scan order (row-major).
// It is the deterministic comparator used both for picking the walk's
// start point and for breaking equal-distance ties.
func scanBefore(a, b models.Pixel) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// distSq returns the squared Euclidean distance between two pixels as an
// exact integer, so distance comparisons carry no floating-point fuzz.
func distSq(a, b models.Pixel) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
