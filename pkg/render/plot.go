package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"fouriersketch/internal/models"
	"fouriersketch/pkg/epicycle"
)

// SaveContourPlot writes a PNG overlaying the traced contour and its
// epicycle reconstruction. Path coordinates are Y-down (image convention),
// so Y is negated before plotting to keep the shape upright.
func SaveContourPlot(path []models.Point, series epicycle.Series, samples int, file string) error {
	if samples <= 0 {
		samples = len(path)
	}

	p := plot.New()
	p.Title.Text = "Contour vs. Reconstruction"
	p.X.Label.Text = "X (px)"
	p.Y.Label.Text = "Y (px)"

	contourPts := make(plotter.XYs, len(path))
	for i, pt := range path {
		contourPts[i] = plotter.XY{X: pt.X, Y: -pt.Y}
	}

	trace := series.Trace(samples)
	reconPts := make(plotter.XYs, 0, len(trace)+1)
	for _, pt := range trace {
		reconPts = append(reconPts, plotter.XY{X: pt.X, Y: -pt.Y})
	}
	if len(trace) > 0 {
		// Close the reconstruction loop.
		reconPts = append(reconPts, plotter.XY{X: trace[0].X, Y: -trace[0].Y})
	}

	if len(contourPts) > 0 {
		contourLine, err := plotter.NewLine(contourPts)
		if err != nil {
			return err
		}
		contourLine.Color = color.RGBA{R: 160, G: 160, B: 160, A: 255}
		contourLine.Width = vg.Points(1)
		p.Add(contourLine)
		p.Legend.Add("contour", contourLine)
	}

	if len(reconPts) > 0 {
		reconLine, err := plotter.NewLine(reconPts)
		if err != nil {
			return err
		}
		reconLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
		reconLine.Width = vg.Points(1)
		p.Add(reconLine)
		p.Legend.Add(fmt.Sprintf("%d epicycles", len(series)), reconLine)
	}

	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(8*vg.Inch, 8*vg.Inch, file); err != nil {
		return fmt.Errorf("save contour plot: %w", err)
	}
	return nil
}

// SaveSpectrumPlot writes a PNG of epicycle radii by rank, showing how
// quickly the amplitudes fall off and how much of the shape the kept terms
// carry.
func SaveSpectrumPlot(series epicycle.Series, file string) error {
	pts := make(plotter.XYs, len(series))
	for i, d := range series {
		pts[i] = plotter.XY{X: float64(i), Y: d.Radius}
	}

	p := plot.New()
	p.Title.Text = "Epicycle Radii by Rank"
	p.X.Label.Text = "Rank"
	p.Y.Label.Text = "Radius (px)"

	if len(pts) > 0 {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
		line.Width = vg.Points(1)
		p.Add(line)
	}

	if err := p.Save(14*vg.Inch, 6*vg.Inch, file); err != nil {
		return fmt.Errorf("save spectrum plot: %w", err)
	}
	return nil
}
