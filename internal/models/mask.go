package models

// Mask is a rectangular binary image. Foreground bits mark edge pixels.
// It is the exchange format between the edge extractor, which produces it,
// and the contour tracer, which consumes it.
type Mask struct {
	// Width and Height are the mask dimensions in pixels
	Width  int
	Height int

	// Bits holds the foreground flags in row-major order
	Bits []bool
}

// NewMask creates an all-background mask with the given dimensions.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		Width:  width,
		Height: height,
		Bits:   make([]bool, width*height),
	}
}

// At reports whether the pixel at (x, y) is foreground.
// Out-of-bounds coordinates read as background, which lets neighborhood
// scans run without explicit border handling.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Bits[y*m.Width+x]
}

// Set writes the foreground flag at (x, y). Out-of-bounds writes are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Bits[y*m.Width+x] = v
}

// Count returns the number of foreground pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	out := &Mask{
		Width:  m.Width,
		Height: m.Height,
		Bits:   make([]bool, len(m.Bits)),
	}
	copy(out.Bits, m.Bits)
	return out
}
