// Package render turns pipeline output into viewable artifacts: SVG stills,
// PNG plots, animated GIFs, interactive HTML charts, and a live terminal
// preview. All renderers consume the same inputs, the recentered contour
// path and the selected epicycle series, and share the Y-down coordinate
// convention the contour tracer produces.
package render

import (
	"math"

	"fouriersketch/internal/models"
)

// bounds returns the axis-aligned bounding box covering every point in the
// given slices. Empty input yields a zero box.
func bounds(paths ...[]models.Point) (minX, minY, maxX, maxY float64) {
	first := true
	for _, pts := range paths {
		for _, p := range pts {
			if first {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				first = false
				continue
			}
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return minX, minY, maxX, maxY
}

// mapping scales world coordinates onto a canvas, preserving aspect ratio
// and centering the world box.
type mapping struct {
	scale    float64
	worldCX  float64
	worldCY  float64
	canvasCX float64
	canvasCY float64
}

// fit builds a mapping from the world box onto a canvasW x canvasH canvas,
// leaving the given fractional margin on each side. Degenerate boxes
// (single point, empty input) are widened to unit size so the mapping stays
// finite.
func fit(minX, minY, maxX, maxY, canvasW, canvasH, margin float64) mapping {
	w := maxX - minX
	h := maxY - minY
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	usable := 1 - 2*margin
	scale := math.Min(canvasW*usable/w, canvasH*usable/h)

	return mapping{
		scale:    scale,
		worldCX:  (minX + maxX) / 2,
		worldCY:  (minY + maxY) / 2,
		canvasCX: canvasW / 2,
		canvasCY: canvasH / 2,
	}
}

// apply maps a world point to canvas coordinates.
func (m mapping) apply(p models.Point) (x, y float64) {
	return m.canvasCX + (p.X-m.worldCX)*m.scale, m.canvasCY + (p.Y-m.worldCY)*m.scale
}
