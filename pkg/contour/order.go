package contour

import (
	"fouriersketch/internal/models"
)

const (
	// gridCell is the bucket edge length of the spatial index in pixels.
	gridCell = 16

	// gridThreshold is the point count above which Order switches from the
	// naive quadratic scan to the bucketed search. Both produce the same
	// sequence; only the lookup cost differs.
	gridThreshold = 256
)

// Order sequences an unordered pixel set into a single traversal path by a
// greedy nearest-neighbor walk. The walk starts at the scan-order smallest
// pixel (lowest row, then lowest column) and repeatedly appends the closest
// remaining pixel, breaking equal-distance ties by scan order. The result
// is therefore a permutation of the input that does not depend on the
// input's ordering.
//
// Stitching between disconnected contour fragments happens implicitly: the
// walk jumps to the nearest pixel of the next fragment. That is an accepted
// approximation, not an error.
//
// Parameters:
//   - pixels: the unordered point set; pixels must be unique
//
// Returns:
//   - the pixels reordered into the traversal path
func Order(pixels []models.Pixel) []models.Pixel {
	if len(pixels) <= 1 {
		out := make([]models.Pixel, len(pixels))
		copy(out, pixels)
		return out
	}
	if len(pixels) < gridThreshold {
		return orderNaive(pixels)
	}
	return orderGrid(pixels)
}

// orderNaive is the quadratic reference walk: every step scans all
// remaining pixels for the closest one. Removal uses the swap-with-last
// trick to stay O(1) per step.
func orderNaive(pixels []models.Pixel) []models.Pixel {
	remaining := make([]models.Pixel, len(pixels))
	copy(remaining, pixels)

	start := 0
	for i := 1; i < len(remaining); i++ {
		if scanBefore(remaining[i], remaining[start]) {
			start = i
		}
	}

	out := make([]models.Pixel, 0, len(pixels))
	cur := remaining[start]
	remaining[start] = remaining[len(remaining)-1]
	remaining = remaining[:len(remaining)-1]
	out = append(out, cur)

	for len(remaining) > 0 {
		best := 0
		bestD := distSq(cur, remaining[0])
		for i := 1; i < len(remaining); i++ {
			d := distSq(cur, remaining[i])
			if d < bestD || (d == bestD && scanBefore(remaining[i], remaining[best])) {
				best = i
				bestD = d
			}
		}
		cur = remaining[best]
		remaining[best] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		out = append(out, cur)
	}
	return out
}

// orderGrid runs the same walk over a bucket grid so each nearest-neighbor
// query only touches pixels near the current position. Candidates are
// compared with the exact comparator used by orderNaive (squared distance,
// then scan order), and a ring of buckets is only skipped once no pixel in
// it could beat the best candidate found so far, so the output sequence is
// identical to the naive walk's.
func orderGrid(pixels []models.Pixel) []models.Pixel {
	g := newPixelGrid(pixels, gridCell)

	start := 0
	for i := 1; i < len(pixels); i++ {
		if scanBefore(pixels[i], pixels[start]) {
			start = i
		}
	}

	out := make([]models.Pixel, 0, len(pixels))
	cur := pixels[start]
	g.remove(start)
	out = append(out, cur)

	for g.size > 0 {
		idx := g.nearest(cur)
		cur = pixels[idx]
		g.remove(idx)
		out = append(out, cur)
	}
	return out
}

// pixelGrid buckets pixel indices by cell for ring-expanding
// nearest-neighbor queries during the greedy walk.
type pixelGrid struct {
	cell   int
	pixels []models.Pixel
	cells  map[[2]int][]int
	where  map[int][2]int
	size   int

	minCX, maxCX int
	minCY, maxCY int
}

func newPixelGrid(pixels []models.Pixel, cell int) *pixelGrid {
	g := &pixelGrid{
		cell:   cell,
		pixels: pixels,
		cells:  make(map[[2]int][]int),
		where:  make(map[int][2]int, len(pixels)),
		size:   len(pixels),
	}
	for i, p := range pixels {
		k := g.key(p)
		g.cells[k] = append(g.cells[k], i)
		g.where[i] = k
		if len(g.where) == 1 {
			g.minCX, g.maxCX = k[0], k[0]
			g.minCY, g.maxCY = k[1], k[1]
			continue
		}
		if k[0] < g.minCX {
			g.minCX = k[0]
		}
		if k[0] > g.maxCX {
			g.maxCX = k[0]
		}
		if k[1] < g.minCY {
			g.minCY = k[1]
		}
		if k[1] > g.maxCY {
			g.maxCY = k[1]
		}
	}
	return g
}

func (g *pixelGrid) key(p models.Pixel) [2]int {
	return [2]int{floorDiv(p.X, g.cell), floorDiv(p.Y, g.cell)}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (g *pixelGrid) remove(idx int) {
	k, ok := g.where[idx]
	if !ok {
		return
	}
	delete(g.where, idx)
	bucket := g.cells[k]
	for i, v := range bucket {
		if v == idx {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			break
		}
	}
	if len(bucket) == 0 {
		delete(g.cells, k)
	} else {
		g.cells[k] = bucket
	}
	g.size--
}

// nearest returns the index of the remaining pixel closest to from,
// breaking distance ties by scan order. It expands bucket rings outward
// and stops once the best candidate is provably closer than anything a
// farther ring could hold: a pixel in a ring r cells away is at least
// (r-1)*cell pixels distant.
func (g *pixelGrid) nearest(from models.Pixel) int {
	center := g.key(from)
	maxRing := g.maxCX - g.minCX
	if d := g.maxCY - g.minCY; d > maxRing {
		maxRing = d
	}
	maxRing += 2

	best := -1
	bestD := 0
	for r := 0; r <= maxRing; r++ {
		g.scanRing(center, r, from, &best, &bestD)
		if best >= 0 {
			reach := r * g.cell
			if bestD < reach*reach {
				break
			}
		}
	}
	return best
}

func (g *pixelGrid) scanRing(center [2]int, r int, from models.Pixel, best *int, bestD *int) {
	if r == 0 {
		g.scanCell(center, from, best, bestD)
		return
	}
	for dx := -r; dx <= r; dx++ {
		g.scanCell([2]int{center[0] + dx, center[1] - r}, from, best, bestD)
		g.scanCell([2]int{center[0] + dx, center[1] + r}, from, best, bestD)
	}
	for dy := -r + 1; dy <= r-1; dy++ {
		g.scanCell([2]int{center[0] - r, center[1] + dy}, from, best, bestD)
		g.scanCell([2]int{center[0] + r, center[1] + dy}, from, best, bestD)
	}
}

func (g *pixelGrid) scanCell(k [2]int, from models.Pixel, best *int, bestD *int) {
	bucket, ok := g.cells[k]
	if !ok {
		return
	}
	for _, idx := range bucket {
		d := distSq(from, g.pixels[idx])
		if *best < 0 || d < *bestD || (d == *bestD && scanBefore(g.pixels[idx], g.pixels[*best])) {
			*best = idx
			*bestD = d
		}
	}
}
