package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"fouriersketch/internal/models"
	"fouriersketch/pkg/epicycle"
)

// Stroke styles for the SVG layers.
const (
	svgContourStyle = "fill='none' stroke='#999999' stroke-width='1'"
	svgTraceStyle   = "fill='none' stroke='#1f77b4' stroke-width='1.5'"
	svgCircleStyle  = "fill='none' stroke='#cccccc' stroke-width='0.5'"
	svgTipStyle     = "fill='#d62728' stroke='none'"
)

// svgWriter emits SVG elements to an io.Writer. The first write error
// sticks and suppresses all further output.
type svgWriter struct {
	w   io.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *svgWriter) start(minX, minY, width, height float64) {
	s.printf(`<?xml version="1.0"?>
<svg xmlns='http://www.w3.org/2000/svg' viewBox='%.3f %.3f %.3f %.3f'>
`, minX, minY, width, height)
}

func (s *svgWriter) end() {
	s.printf("</svg>\n")
}

func (s *svgWriter) polyline(pts []models.Point, style string) {
	if len(pts) == 0 {
		return
	}
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.3f,%.3f", p.X, p.Y)
	}
	s.printf("<polyline points='%s' %s/>\n", b.String(), style)
}

func (s *svgWriter) circle(c models.Point, r float64, style string) {
	s.printf("<circle cx='%.3f' cy='%.3f' r='%.3f' %s/>\n", c.X, c.Y, r, style)
}

// WriteSVG writes a still image of the sketch: the traced contour in grey,
// the epicycle reconstruction over it in blue, and the circle chain frozen
// at its starting position. The reconstruction is sampled at the given
// number of points; samples <= 0 picks a default fine enough for smooth
// curves.
func WriteSVG(w io.Writer, path []models.Point, series epicycle.Series, samples int) error {
	if samples <= 0 {
		samples = 1024
	}

	trace := series.Trace(samples)
	if len(trace) > 0 {
		// Close the reconstruction loop.
		trace = append(trace, trace[0])
	}

	minX, minY, maxX, maxY := bounds(path, trace)
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	marginX := spanX * 0.05
	marginY := spanY * 0.05

	s := &svgWriter{w: w}
	s.start(minX-marginX, minY-marginY, spanX+2*marginX, spanY+2*marginY)
	s.polyline(path, svgContourStyle)
	s.polyline(trace, svgTraceStyle)

	// Circle chain at t=0: one circle per epicycle, centered on the running
	// partial sum, plus a dot at the pen tip.
	chain := series.Chain(0)
	for i, d := range series {
		if d.Radius > 0 {
			s.circle(chain[i], d.Radius, svgCircleStyle)
		}
	}
	if len(chain) > 0 {
		tipRadius := math.Max(spanX, spanY) * 0.005
		s.circle(chain[len(chain)-1], tipRadius, svgTipStyle)
	}

	s.end()
	return s.err
}
