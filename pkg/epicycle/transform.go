package epicycle

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"fouriersketch/internal/models"
)

// Decompose computes the discrete Fourier transform of the ordered path,
// reinterpreting each point as a complex sample. The transform runs over
// the exact signal length: no zero padding, so coefficient magnitudes stay
// physically meaningful relative to the traced shape's scale.
//
// The heavy lifting is gonum's mixed-radix complex FFT, which handles any
// N ≥ 1 and matches the direct DFT sum to floating-point rounding.
//
// Returns ErrEmptySignal for a zero-length path.
func Decompose(path []models.Point, conv Convention) (*Spectrum, error) {
	n := len(path)
	if n == 0 {
		return nil, ErrEmptySignal
	}

	seq := make([]complex128, n)
	for i, p := range path {
		seq[i] = p.Complex()
	}

	coeffs := make([]Coefficient, n)
	if n == 1 {
		// A single sample is its own zero-frequency coefficient.
		coeffs[0] = Coefficient{Freq: 0, Amp: seq[0]}
	} else {
		fft := fourier.NewCmplxFFT(n)
		out := fft.Coefficients(nil, seq)
		for i, amp := range out {
			coeffs[i] = Coefficient{Freq: signedFreq(i, n, conv), Amp: amp}
		}
	}

	return &Spectrum{
		N:            n,
		Convention:   conv,
		Coefficients: coeffs,
	}, nil
}
