package epicycle

import (
	"math"
	"math/cmplx"
	"sort"
)

// SelectOptions controls how many coefficients survive selection.
type SelectOptions struct {
	// Terms is the maximum number of epicycles to keep (K). Values of zero
	// or below, or values at or above the signal length, keep every term.
	Terms int

	// MinRadius drops epicycles whose normalized radius falls below the
	// threshold. The zero value keeps everything, including exact-zero
	// coefficients, so full-term selection reconstructs the signal exactly.
	// The original drawing tool used 0.001 to skip invisible circles.
	MinRadius float64
}

// Select ranks the spectrum's coefficients by amplitude magnitude and
// packages the top K as epicycle descriptors. Ranking ties prefer the
// lower absolute frequency (coarse shape over fine detail), then the
// ascending signed frequency, so selection is fully deterministic.
//
// Each retained coefficient maps to:
//
//	radius  = |amplitude| / N
//	phase   = atan2(Im, Re)
//	angular velocity = signed frequency index
//
// The result is sorted by descending radius under the same tie rule, which
// fixes the evaluator's summation order.
func (s *Spectrum) Select(opts SelectOptions) Series {
	terms := opts.Terms
	if terms <= 0 || terms > s.N {
		terms = s.N
	}

	ranked := make([]Coefficient, len(s.Coefficients))
	copy(ranked, s.Coefficients)
	sort.Slice(ranked, func(i, j int) bool {
		ai := cmplx.Abs(ranked[i].Amp)
		aj := cmplx.Abs(ranked[j].Amp)
		if ai != aj {
			return ai > aj
		}
		fi := abs(ranked[i].Freq)
		fj := abs(ranked[j].Freq)
		if fi != fj {
			return fi < fj
		}
		return ranked[i].Freq < ranked[j].Freq
	})

	scale := 1.0 / float64(s.N)
	series := make(Series, 0, terms)
	for _, c := range ranked {
		if len(series) == terms {
			break
		}
		radius := cmplx.Abs(c.Amp) * scale
		if radius < opts.MinRadius {
			// ranked descending: everything after this is smaller still
			break
		}
		series = append(series, Descriptor{
			Radius:          radius,
			Phase:           math.Atan2(imag(c.Amp), real(c.Amp)),
			AngularVelocity: float64(c.Freq),
		})
	}
	return series
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
