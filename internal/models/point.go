package models

import (
	"math"
)

// Pixel is an integer image-space coordinate. The edge extractor emits the
// foreground pixels of its binary mask as Pixel values, and the contour
// tracer orders them into a path.
type Pixel struct {
	// X is the column index, increasing rightwards
	X int

	// Y is the row index, increasing downwards (image convention)
	Y int
}

// Point converts the pixel to a floating-point point.
func (p Pixel) Point() Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// Point is a 2-D point or offset with float64 coordinates. The ordered
// contour path and every evaluated epicycle position use this type.
// Y keeps the image orientation (downwards) throughout the pipeline.
type Point struct {
	X, Y float64
}

// Add returns the componentwise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistanceSquared returns the squared Euclidean distance between p and q.
// It avoids the square root when only comparisons are needed.
func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Complex reinterprets the point as a complex number with the real part
// carrying X and the imaginary part carrying Y. This is the signal sample
// representation consumed by the spectral decomposition.
func (p Point) Complex() complex128 {
	return complex(p.X, p.Y)
}

// PointFromComplex is the inverse of Point.Complex.
func PointFromComplex(c complex128) Point {
	return Point{X: real(c), Y: imag(c)}
}
