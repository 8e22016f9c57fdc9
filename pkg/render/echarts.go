package render

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"fouriersketch/internal/models"
	"fouriersketch/pkg/epicycle"
)

// WriteShapeChart renders an interactive HTML scatter page comparing the
// traced contour against the epicycle reconstruction. Y is negated so the
// shape displays upright in chart coordinates.
func WriteShapeChart(w io.Writer, path []models.Point, series epicycle.Series, samples int) error {
	if samples <= 0 {
		samples = len(path)
	}

	contourData := make([]opts.ScatterData, 0, len(path))
	pad := 1.0
	for _, p := range path {
		contourData = append(contourData, opts.ScatterData{Value: []interface{}{p.X, -p.Y}})
		pad = math.Max(pad, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}

	trace := series.Trace(samples)
	reconData := make([]opts.ScatterData, 0, len(trace))
	for _, p := range trace {
		reconData = append(reconData, opts.ScatterData{Value: []interface{}{p.X, -p.Y}})
		pad = math.Max(pad, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	pad *= 1.05

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Fourier Sketch", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Epicycle Reconstruction", Subtitle: fmt.Sprintf("contour=%d points, epicycles=%d", len(path), len(series))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X (px)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y (px)", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("contour", contourData,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#888888"}))
	scatter.AddSeries("epicycles", reconData,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#35b779"}))

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		return fmt.Errorf("render shape chart: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
