package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"math"
	"os"
	"runtime"

	"fouriersketch/internal/models"
	"fouriersketch/pkg/epicycle"
)

// ProgressCallback is a function that reports progress while frames render.
type ProgressCallback func(completed, total int, message string)

// AnimationOptions controls GIF output.
type AnimationOptions struct {
	// Frames is the number of frames covering one full revolution of t
	Frames int

	// Width and Height are the frame dimensions in pixels
	Width  int
	Height int

	// TrailPoints caps how many trace points the pen trail keeps visible
	TrailPoints int

	// DelayCS is the per-frame delay in hundredths of a second
	DelayCS int

	// Workers is the number of goroutines rendering frames
	Workers int
}

// DefaultAnimationOptions returns the standard animation settings.
func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{
		Frames:      1200,
		Width:       900,
		Height:      800,
		TrailPoints: 15000,
		DelayCS:     2,
		Workers:     runtime.NumCPU(),
	}
}

// withDefaults fills unset fields from DefaultAnimationOptions.
func (o AnimationOptions) withDefaults() AnimationOptions {
	def := DefaultAnimationOptions()
	if o.Frames <= 0 {
		o.Frames = def.Frames
	}
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.TrailPoints <= 0 {
		o.TrailPoints = def.TrailPoints
	}
	if o.DelayCS <= 0 {
		o.DelayCS = def.DelayCS
	}
	if o.Workers <= 0 {
		o.Workers = def.Workers
	}
	return o
}

// Palette indices for frame drawing.
const (
	colorBackground = iota
	colorCircle
	colorArm
	colorTrail
	colorTip
)

var framePalette = color.Palette{
	color.RGBA{A: 0xff},                            // background
	color.RGBA{R: 0x46, G: 0x46, B: 0x46, A: 0xff}, // circle outlines
	color.RGBA{R: 0x8c, G: 0x8c, B: 0x8c, A: 0xff}, // chain arms
	color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // pen trail
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // pen tip
}

// Animator renders epicycle animations frame by frame across a worker pool.
type Animator struct {
	// opts stores the animation settings
	opts AnimationOptions

	// progressCallback receives frame completion updates when set
	progressCallback ProgressCallback
}

// NewAnimator creates an animator with the provided options. Zero-valued
// fields fall back to DefaultAnimationOptions.
func NewAnimator(opts AnimationOptions) *Animator {
	return &Animator{opts: opts.withDefaults()}
}

// SetProgressCallback sets a callback function to report rendering progress.
// When unset, progress prints to stdout.
func (a *Animator) SetProgressCallback(callback ProgressCallback) {
	a.progressCallback = callback
}

// reportProgress calls the progress callback if set, otherwise prints to stdout
func (a *Animator) reportProgress(completed, total int, message string) {
	if a.progressCallback != nil {
		a.progressCallback(completed, total, message)
		return
	}
	if message != "" {
		fmt.Println(message)
		return
	}
	if total > 0 {
		fmt.Printf("\rRendering frames: %.1f%% complete", float64(completed)/float64(total)*100)
		if completed >= total {
			fmt.Println()
		}
	}
}

// SaveGIF renders one full revolution of the epicycle chain and writes it
// as an animated GIF. Frames render concurrently; evaluation of the series
// is read-only so workers share it without locking.
func (a *Animator) SaveGIF(series epicycle.Series, file string) error {
	if len(series) == 0 {
		return fmt.Errorf("cannot animate an empty epicycle series")
	}

	opts := a.opts
	frames := opts.Frames

	// The pen trail is the reconstruction sampled once per frame.
	trace := series.Trace(frames)

	minX, minY, maxX, maxY := bounds(trace)
	m := fit(minX, minY, maxX, maxY, float64(opts.Width), float64(opts.Height), 0.05)

	type frameResult struct {
		index int
		img   *image.Paletted
	}
	resultChan := make(chan frameResult)

	for w := 0; w < opts.Workers; w++ {
		go func(workerID int) {
			for f := workerID; f < frames; f += opts.Workers {
				resultChan <- frameResult{
					index: f,
					img:   a.renderFrame(f, series, trace, m),
				}
			}
		}(w)
	}

	images := make([]*image.Paletted, frames)
	delays := make([]int, frames)
	completedTasks := 0
	for completedTasks < frames {
		res := <-resultChan
		completedTasks++
		images[res.index] = res.img
		delays[res.index] = opts.DelayCS
		a.reportProgress(completedTasks, frames, "")
	}

	out, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to create GIF file: %v", err)
	}
	defer out.Close()

	anim := &gif.GIF{
		Image:     images,
		Delay:     delays,
		LoopCount: 0,
	}
	if err := gif.EncodeAll(out, anim); err != nil {
		return fmt.Errorf("failed to encode GIF: %v", err)
	}

	return nil
}

// renderFrame draws frame f: the circle chain at time t, the arms linking
// circle centers, the pen trail up to f, and the pen tip.
func (a *Animator) renderFrame(f int, series epicycle.Series, trace []models.Point, m mapping) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, a.opts.Width, a.opts.Height), framePalette)

	t := 2 * math.Pi * float64(f) / float64(len(trace))
	chain := series.Chain(t)

	for i, d := range series {
		// Circles smaller than a pixel don't draw.
		if d.Radius*m.scale >= 0.5 {
			drawCircle(img, chain[i], d.Radius, m, colorCircle)
		}
	}
	for i := 1; i < len(chain); i++ {
		drawMappedLine(img, chain[i-1], chain[i], m, colorArm)
	}

	start := f + 1 - a.opts.TrailPoints
	if start < 0 {
		start = 0
	}
	for i := start; i < f; i++ {
		drawMappedLine(img, trace[i], trace[i+1], m, colorTrail)
	}

	tipX, tipY := m.apply(chain[len(chain)-1])
	fillDisc(img, int(math.Round(tipX)), int(math.Round(tipY)), 2, colorTip)

	return img
}

// drawMappedLine maps two world points onto the canvas and draws the
// segment between them.
func drawMappedLine(img *image.Paletted, p1, p2 models.Point, m mapping, idx uint8) {
	x1, y1 := m.apply(p1)
	x2, y2 := m.apply(p2)
	drawLine(img, int(math.Round(x1)), int(math.Round(y1)), int(math.Round(x2)), int(math.Round(y2)), idx)
}

// drawLine draws a segment with Bresenham's algorithm.
func drawLine(img *image.Paletted, x1, y1, x2, y2 int, idx uint8) {
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	errTerm := dx - dy
	for {
		setPixel(img, x1, y1, idx)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * errTerm
		if e2 > -dy {
			errTerm -= dy
			x1 += sx
		}
		if e2 < dx {
			errTerm += dx
			y1 += sy
		}
	}
}

// drawCircle approximates a circle with line segments between parametric
// samples. Sampling density scales with the on-canvas circumference.
func drawCircle(img *image.Paletted, center models.Point, radius float64, m mapping, idx uint8) {
	cx, cy := m.apply(center)
	r := radius * m.scale

	steps := int(2 * math.Pi * r)
	if steps < 12 {
		steps = 12
	}

	prevX := cx + r
	prevY := cy
	for i := 1; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		drawLine(img, int(math.Round(prevX)), int(math.Round(prevY)), int(math.Round(x)), int(math.Round(y)), idx)
		prevX, prevY = x, y
	}
}

// fillDisc fills a small solid disc, used for the pen tip.
func fillDisc(img *image.Paletted, cx, cy, r int, idx uint8) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				setPixel(img, cx+dx, cy+dy, idx)
			}
		}
	}
}

func setPixel(img *image.Paletted, x, y int, idx uint8) {
	if image.Pt(x, y).In(img.Rect) {
		img.SetColorIndex(x, y, idx)
	}
}
