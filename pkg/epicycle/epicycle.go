// Package epicycle decomposes an ordered 2-D path into rotating-vector
// descriptors and evaluates their sum over time.
//
// The ordered path is treated as a complex-valued discrete signal
// (real = x, imaginary = y). A discrete Fourier transform produces one
// complex coefficient per frequency index; the dominant coefficients are
// ranked and packaged as epicycles (radius, initial phase, signed angular
// velocity). Summing the epicycles at a time parameter t in [0, 2π)
// retraces the path: with all N terms kept the reconstruction is exact at
// the sample times t_n = 2π·n/N up to floating-point rounding, and with
// fewer terms it is the closest truncated-series approximation.
package epicycle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySignal is returned when a decomposition is requested for a
// zero-length path.
var ErrEmptySignal = errors.New("signal contains no samples")

// Convention selects how frequency indices are numbered. It must be fixed
// once per run: the indices chosen here become descriptor angular
// velocities, so decomposition and evaluation automatically agree.
type Convention int

const (
	// Symmetric centers the indices around zero, running from -⌊N/2⌋ to
	// ⌈N/2⌉-1. Negative indices spin backwards, which gives the smoothest
	// interpolation between sample points. This is the default.
	Symmetric Convention = iota

	// ZeroBased numbers the indices 0..N-1 as produced by the raw
	// transform. At the sample times it reconstructs the same points as
	// Symmetric; between samples all terms spin forward.
	ZeroBased
)

// String returns the configuration-file spelling of the convention.
func (c Convention) String() string {
	switch c {
	case Symmetric:
		return "symmetric"
	case ZeroBased:
		return "zero-based"
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// ParseConvention converts a configuration string into a Convention.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "symmetric", "":
		return Symmetric, nil
	case "zero-based", "zerobased":
		return ZeroBased, nil
	}
	return Symmetric, fmt.Errorf("unknown frequency convention %q", s)
}

// Coefficient is one output of the discrete Fourier transform: the complex
// amplitude at a frequency index. Amp is the exact unnormalized DFT sum
// Σ s[n]·e^(-2πi·k·n/N); radii are normalized by N only when descriptors
// are built.
type Coefficient struct {
	// Freq is the frequency index under the spectrum's convention
	Freq int

	// Amp is the complex amplitude at that frequency
	Amp complex128
}

// Spectrum is the full decomposition result: one coefficient per frequency
// index of a length-N signal, under a fixed index convention.
type Spectrum struct {
	// N is the signal length the coefficients were computed from
	N int

	// Convention is the index numbering shared with evaluation
	Convention Convention

	// Coefficients holds one entry per frequency index, in transform order
	Coefficients []Coefficient
}

// Descriptor is a single epicycle: a vector of fixed Radius rotating at
// constant AngularVelocity, starting at angle Phase. Descriptors are
// immutable value records; the evaluator reads them without modification.
type Descriptor struct {
	// Radius is the vector length, |amplitude| / N
	Radius float64

	// Phase is the starting angle in radians, in [-π, π]
	Phase float64

	// AngularVelocity is the signed frequency index: the number of full
	// revolutions this vector completes while t sweeps one period [0, 2π).
	// Negative values spin counter to positive ones.
	AngularVelocity float64
}

// Series is an ordered set of epicycle descriptors, largest radius first.
// The fixed order makes repeated evaluation bit-reproducible: summation
// order affects only rounding, and keeping it stable keeps rendered frames
// identical between runs.
type Series []Descriptor

// signedFreq maps a raw transform index to the convention's frequency
// index. Under Symmetric, indices past the midpoint wrap to negatives,
// matching the ordering used by gonum's CmplxFFT.Freq.
func signedFreq(i, n int, conv Convention) int {
	if conv == ZeroBased {
		return i
	}
	if i < (n+1)/2 {
		return i
	}
	return i - n
}
