package edge

import (
	"fouriersketch/internal/models"
)

// Dilate grows the foreground by a Chebyshev (L∞) structuring element:
// a pixel is set when any input pixel lies within the given radius in
// both axes. Radius zero returns a copy.
func Dilate(m *models.Mask, radius int) *models.Mask {
	if radius <= 0 {
		return m.Clone()
	}

	out := models.NewMask(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.Bits[y*m.Width+x] {
				continue
			}
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					out.Set(x+dx, y+dy, true)
				}
			}
		}
	}
	return out
}

// Thin reduces foreground regions to single-pixel-wide skeletons with the
// Zhang-Suen algorithm: alternating passes delete boundary pixels whose
// neighborhood satisfies the pass conditions, until a full round deletes
// nothing. Thinning an already-thin mask is a no-op.
func Thin(m *models.Mask) *models.Mask {
	out := m.Clone()
	for {
		removed := thinPass(out, false)
		removed += thinPass(out, true)
		if removed == 0 {
			return out
		}
	}
}

// thinPass marks and deletes one Zhang-Suen sub-iteration. Deletions are
// collected first and applied together so every decision in the pass sees
// the same neighborhood state.
func thinPass(m *models.Mask, second bool) int {
	var del []models.Pixel

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.Bits[y*m.Width+x] {
				continue
			}

			// Neighbors in the Zhang-Suen numbering, clockwise from north.
			p2 := m.At(x, y-1)
			p3 := m.At(x+1, y-1)
			p4 := m.At(x+1, y)
			p5 := m.At(x+1, y+1)
			p6 := m.At(x, y+1)
			p7 := m.At(x-1, y+1)
			p8 := m.At(x-1, y)
			p9 := m.At(x-1, y-1)

			ring := [8]bool{p2, p3, p4, p5, p6, p7, p8, p9}

			b := 0
			for _, v := range ring {
				if v {
					b++
				}
			}
			if b < 2 || b > 6 {
				continue
			}

			a := 0
			for i := 0; i < 8; i++ {
				if !ring[i] && ring[(i+1)%8] {
					a++
				}
			}
			if a != 1 {
				continue
			}

			if second {
				if (p2 && p4 && p8) || (p2 && p6 && p8) {
					continue
				}
			} else {
				if (p2 && p4 && p6) || (p4 && p6 && p8) {
					continue
				}
			}

			del = append(del, models.Pixel{X: x, Y: y})
		}
	}

	for _, p := range del {
		m.Set(p.X, p.Y, false)
	}
	return len(del)
}
