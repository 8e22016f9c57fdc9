package epicycle

import (
	"math"

	"fouriersketch/internal/models"
)

// Point evaluates the epicycle sum at time t and returns the composite tip
// position: Σ radius·e^(i·(angular_velocity·t + phase)) over all
// descriptors, as an offset from the series origin.
//
// The function is pure: it reads only the descriptor values and t, so a
// rendering loop may call it concurrently or repeatedly without locking.
func (sr Series) Point(t float64) models.Point {
	var x, y float64
	for _, d := range sr {
		sin, cos := math.Sincos(d.AngularVelocity*t + d.Phase)
		x += d.Radius * cos
		y += d.Radius * sin
	}
	return models.Point{X: x, Y: y}
}

// Chain evaluates the sum at time t but keeps every intermediate position:
// element 0 is the origin, element i+1 is the tip of the i-th epicycle
// riding on the tip of the previous one. The final element equals Point(t).
// Renderers use the chain to draw the linked circles.
func (sr Series) Chain(t float64) []models.Point {
	out := make([]models.Point, len(sr)+1)
	var cur models.Point
	out[0] = cur
	for i, d := range sr {
		sin, cos := math.Sincos(d.AngularVelocity*t + d.Phase)
		cur = cur.Add(models.Point{X: d.Radius * cos, Y: d.Radius * sin})
		out[i+1] = cur
	}
	return out
}

// Trace samples one full period at the given resolution: element i is
// Point(2π·i/samples). With samples equal to the original signal length
// and all terms selected, the trace reproduces the ordered path.
func (sr Series) Trace(samples int) []models.Point {
	if samples <= 0 {
		return nil
	}
	out := make([]models.Point, samples)
	step := 2 * math.Pi / float64(samples)
	for i := range out {
		out[i] = sr.Point(float64(i) * step)
	}
	return out
}
