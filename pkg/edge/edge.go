// Package edge extracts a binary edge mask from an image. The chain is the
// classic one for line drawings: Canny edge detection, morphological
// dilation to close small gaps, and Zhang-Suen thinning to bring the
// dilated edges back to single-pixel width. The resulting mask feeds the
// contour tracer.
package edge

import (
	"image"
	"math"

	"fouriersketch/internal/models"
)

// gaussianSigma is the blur strength applied before gradient computation.
const gaussianSigma = 1.4

// Options configures the extraction chain.
type Options struct {
	// LowThreshold and HighThreshold are the Canny hysteresis bounds on
	// gradient magnitude, on the 0-255 luminance scale.
	LowThreshold  float64
	HighThreshold float64

	// DilateRadius is the Chebyshev radius of the dilation step.
	// Zero skips dilation.
	DilateRadius int

	// Thin enables Zhang-Suen thinning after dilation.
	Thin bool
}

// DefaultOptions returns the extraction parameters tuned for line drawings
// and silhouettes: Canny 50/100, dilation radius 2, thinning on.
func DefaultOptions() Options {
	return Options{
		LowThreshold:  50,
		HighThreshold: 100,
		DilateRadius:  2,
		Thin:          true,
	}
}

// Extract runs the full chain on an image and returns the edge mask.
func Extract(img image.Image, opts Options) *models.Mask {
	m := Canny(img, opts.LowThreshold, opts.HighThreshold)
	if opts.DilateRadius > 0 {
		m = Dilate(m, opts.DilateRadius)
	}
	if opts.Thin {
		m = Thin(m)
	}
	return m
}

// Canny detects edges by Gaussian smoothing, Sobel gradients, non-maximum
// suppression and double-threshold hysteresis. Pixels with gradient
// magnitude at or above high seed the result; pixels at or above low are
// kept when 8-connected to a seed.
func Canny(img image.Image, low, high float64) *models.Mask {
	lum, w, h := luminance(img)
	if w == 0 || h == 0 {
		return models.NewMask(w, h)
	}

	blurred := gaussianBlur(lum, w, h, gaussianSigma)
	mag, dir := sobel(blurred, w, h)
	thinned := suppress(mag, dir, w, h)
	return hysteresis(thinned, w, h, low, high)
}

// luminance converts the image to a row-major float64 array on the 0-255
// scale using the BT.601 weights.
func luminance(img image.Image) ([]float64, int, int) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	out := make([]float64, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA returns 16-bit channels; scale to 0-255
			out[y*w+x] = (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257.0
		}
	}
	return out, w, h
}

// gaussianBlur applies a separable Gaussian kernel with the given sigma.
// Borders are handled by clamping sample coordinates.
func gaussianBlur(src []float64, w, h int, sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	clampX := func(x int) int {
		if x < 0 {
			return 0
		}
		if x >= w {
			return w - 1
		}
		return x
	}
	clampY := func(y int) int {
		if y < 0 {
			return 0
		}
		if y >= h {
			return h - 1
		}
		return y
	}

	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			acc := 0.0
			for k, kv := range kernel {
				acc += kv * src[y*w+clampX(x+k-radius)]
			}
			tmp[y*w+x] = acc
		}
	}

	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			acc := 0.0
			for k, kv := range kernel {
				acc += kv * tmp[clampY(y+k-radius)*w+x]
			}
			out[y*w+x] = acc
		}
	}
	return out
}

// sobel computes gradient magnitude and direction with the 3x3 Sobel
// operators. Direction is the gradient angle in radians.
func sobel(src []float64, w, h int) (mag, dir []float64) {
	mag = make([]float64, w*h)
	dir = make([]float64, w*h)

	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		} else if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		} else if y >= h {
			y = h - 1
		}
		return src[y*w+x]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := -at(x-1, y-1) + at(x+1, y-1) +
				-2*at(x-1, y) + 2*at(x+1, y) +
				-at(x-1, y+1) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			mag[y*w+x] = math.Hypot(gx, gy)
			dir[y*w+x] = math.Atan2(gy, gx)
		}
	}
	return mag, dir
}

// suppress keeps only pixels that are local maxima along their gradient
// direction, quantized to the four principal directions.
func suppress(mag, dir []float64, w, h int) []float64 {
	out := make([]float64, w*h)

	magAt := func(x, y int) float64 {
		if x < 0 || y < 0 || x >= w || y >= h {
			return 0
		}
		return mag[y*w+x]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m := mag[y*w+x]
			if m == 0 {
				continue
			}

			deg := dir[y*w+x] * 180 / math.Pi
			if deg < 0 {
				deg += 180
			}

			var dx, dy int
			switch {
			case deg < 22.5 || deg >= 157.5:
				dx, dy = 1, 0
			case deg < 67.5:
				dx, dy = 1, 1
			case deg < 112.5:
				dx, dy = 0, 1
			default:
				dx, dy = -1, 1
			}

			if m >= magAt(x+dx, y+dy) && m >= magAt(x-dx, y-dy) {
				out[y*w+x] = m
			}
		}
	}
	return out
}

// hysteresis thresholds the suppressed magnitudes: pixels at or above high
// are edges, and pixels at or above low join the result when 8-connected
// to one. The walk is a plain depth-first flood from every strong pixel.
func hysteresis(mag []float64, w, h int, low, high float64) *models.Mask {
	out := models.NewMask(w, h)
	stack := make([]models.Pixel, 0, 256)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mag[y*w+x] < high || out.At(x, y) {
				continue
			}
			out.Set(x, y, true)
			stack = append(stack, models.Pixel{X: x, Y: y})

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := p.X+dx, p.Y+dy
						if nx < 0 || ny < 0 || nx >= w || ny >= h {
							continue
						}
						if out.At(nx, ny) || mag[ny*w+nx] < low {
							continue
						}
						out.Set(nx, ny, true)
						stack = append(stack, models.Pixel{X: nx, Y: ny})
					}
				}
			}
		}
	}
	return out
}
