// Package sketch runs the image-to-epicycles pipeline end to end: load an
// image, extract its edge mask, order the edge pixels into a contour path,
// decompose the path into frequency coefficients, and select the dominant
// terms as epicycle descriptors ready for drawing.
package sketch

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"gonum.org/v1/gonum/stat"

	"fouriersketch/internal/models"
	"fouriersketch/pkg/contour"
	"fouriersketch/pkg/edge"
	"fouriersketch/pkg/epicycle"
)

// ProgressCallback is a function that reports progress during the pipeline.
// If the message is not empty it should be displayed to the user; otherwise
// completed/total describe a progress update.
type ProgressCallback func(completed, total int, message string)

// Params holds the pipeline parameters.
type Params struct {
	// InputPath is the image file to sketch (PNG or JPEG).
	InputPath string

	// Edge configures the edge extraction chain.
	Edge edge.Options

	// Terms is the maximum number of epicycles kept after ranking (K).
	// Zero keeps every term.
	Terms int

	// MinRadius drops epicycles below this normalized radius. Zero keeps
	// everything, which makes full-term reconstruction exact.
	MinRadius float64

	// Convention is the frequency index numbering shared by decomposition
	// and evaluation.
	Convention epicycle.Convention
}

// Metrics summarizes how faithfully the selected epicycles reproduce the
// traced contour, measured at the path's own sample times.
type Metrics struct {
	// PointCount is the length of the ordered contour path (N)
	PointCount int

	// TermCount is the number of epicycles kept (K)
	TermCount int

	// CompressionRatio is K/N
	CompressionRatio float64

	// RMSE is the root mean squared distance between each path point and
	// its reconstruction
	RMSE float64

	// MaxPointError is the largest single-point reconstruction distance
	MaxPointError float64
}

// Result is the pipeline output consumed by the rendering layer.
type Result struct {
	// Width and Height are the source image dimensions in pixels
	Width  int
	Height int

	// Path is the ordered contour, recentered around the image center
	Path []models.Point

	// Spectrum is the full frequency decomposition of the path
	Spectrum *epicycle.Spectrum

	// Series holds the selected epicycle descriptors, largest first
	Series epicycle.Series

	// Metrics reports reconstruction fidelity
	Metrics Metrics
}

// Sketcher runs the pipeline. The stages execute sequentially and each
// consumes the previous stage's immutable output, so a Sketcher holds no
// state that outlives Process.
type Sketcher struct {
	// params stores the pipeline configuration
	params *Params

	// progressCallback receives step and progress messages when set
	progressCallback ProgressCallback
}

// NewSketcher creates a sketcher with the provided parameters.
func NewSketcher(params *Params) *Sketcher {
	return &Sketcher{params: params}
}

// SetProgressCallback sets a callback function to report progress during
// the pipeline. When unset, messages print to stdout.
func (s *Sketcher) SetProgressCallback(callback ProgressCallback) {
	s.progressCallback = callback
}

// reportProgress calls the progress callback if set, otherwise prints to stdout
func (s *Sketcher) reportProgress(completed, total int, message string) {
	if s.progressCallback != nil {
		s.progressCallback(completed, total, message)
		return
	}
	if message != "" {
		fmt.Println(message)
	} else if total > 0 {
		fmt.Printf("\rProgress: %.1f%% (%d/%d)", float64(completed)/float64(total)*100, completed, total)
		if completed >= total {
			fmt.Println()
		}
	}
}

// Process runs the complete pipeline on the configured input image.
func (s *Sketcher) Process() (*Result, error) {
	// Step 1: Load the input image
	s.reportProgress(0, 0, "Step 1: Loading input image...")
	img, err := loadImage(s.params.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %v", err)
	}
	bounds := img.Bounds()
	s.reportProgress(0, 0, fmt.Sprintf("Loaded %s (%dx%d)", s.params.InputPath, bounds.Dx(), bounds.Dy()))

	// Step 2: Extract the edge mask
	s.reportProgress(0, 0, "Step 2: Extracting edges...")
	mask := edge.Extract(img, s.params.Edge)
	s.reportProgress(0, 0, fmt.Sprintf("Edge mask contains %d pixels", mask.Count()))

	return s.RunMask(mask)
}

// RunMask runs the pipeline stages downstream of edge extraction. Callers
// that already hold a binary mask enter here directly.
func (s *Sketcher) RunMask(mask *models.Mask) (*Result, error) {
	// Step 3: Order the edge pixels into a contour path
	s.reportProgress(0, 0, "Step 3: Tracing contour path...")
	pixels, err := contour.Points(mask)
	if err != nil {
		return nil, fmt.Errorf("failed to collect edge pixels: %w", err)
	}
	if len(pixels) == 1 {
		s.reportProgress(0, 0, "Warning: contour contains a single point; the drawing collapses to that point")
	}

	ordered := contour.Order(pixels)
	origin := models.Point{
		X: float64(mask.Width) / 2,
		Y: float64(mask.Height) / 2,
	}
	path := contour.Recenter(ordered, origin)
	s.reportProgress(0, 0, fmt.Sprintf("Contour path has %d points", len(path)))

	// Step 4: Decompose the path into frequency coefficients
	s.reportProgress(0, 0, "Step 4: Computing Fourier decomposition...")
	spectrum, err := epicycle.Decompose(path, s.params.Convention)
	if err != nil {
		return nil, fmt.Errorf("failed to decompose path: %w", err)
	}

	// Step 5: Select the dominant epicycles
	s.reportProgress(0, 0, "Step 5: Selecting epicycles...")
	series := spectrum.Select(epicycle.SelectOptions{
		Terms:     s.params.Terms,
		MinRadius: s.params.MinRadius,
	})
	s.reportProgress(0, 0, fmt.Sprintf("Selected %d of %d epicycles", len(series), spectrum.N))

	// Step 6: Measure reconstruction fidelity
	s.reportProgress(0, 0, "Step 6: Computing reconstruction metrics...")
	metrics := computeMetrics(path, series)

	return &Result{
		Width:    mask.Width,
		Height:   mask.Height,
		Path:     path,
		Spectrum: spectrum,
		Series:   series,
		Metrics:  metrics,
	}, nil
}

// computeMetrics evaluates the epicycle sum at each path sample time and
// compares against the original point.
func computeMetrics(path []models.Point, series epicycle.Series) Metrics {
	n := len(path)
	recon := series.Trace(n)

	sqErrs := make([]float64, n)
	maxErr := 0.0
	for i, p := range path {
		d2 := p.DistanceSquared(recon[i])
		sqErrs[i] = d2
		if d := math.Sqrt(d2); d > maxErr {
			maxErr = d
		}
	}

	return Metrics{
		PointCount:       n,
		TermCount:        len(series),
		CompressionRatio: float64(len(series)) / float64(n),
		RMSE:             math.Sqrt(stat.Mean(sqErrs, nil)),
		MaxPointError:    maxErr,
	}
}

// loadImage opens and decodes a PNG or JPEG image.
func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}

	return img, nil
}
