// Package window generates the symmetric tapering windows used by FIR design
// and spectral estimation.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
)

// String returns the lower-case window name used in reports.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	default:
		return "unknown"
	}
}

var (
	hannCoeffs    = [2]float64{0.5, 0.5}
	hammingCoeffs = [2]float64{0.54, 0.46}
)

// Generate returns symmetric window coefficients of the given length:
//
//	w[n] = a0 - a1*cos(2πn/(L-1))
//
// A length-1 window is [1]. Non-positive lengths return nil.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	if length == 1 || t == TypeRectangular {
		for i := range out {
			out[i] = 1
		}
		return out
	}

	var c [2]float64
	switch t {
	case TypeHann:
		c = hannCoeffs
	case TypeHamming:
		c = hammingCoeffs
	default:
		return nil
	}

	m := float64(length - 1)
	for n := range out {
		out[n] = c[0] - c[1]*math.Cos(2*math.Pi*float64(n)/m)
	}
	return out
}

// Hann returns Hann window coefficients, 0.5*(1-cos(2πn/(L-1))).
func Hann(size int) ([]float64, error) {
	return Generate(TypeHann, size), checkSize(size)
}

// Hamming returns Hamming window coefficients, 0.54-0.46*cos(2πn/(L-1)).
func Hamming(size int) ([]float64, error) {
	return Generate(TypeHamming, size), checkSize(size)
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64) {
	coeffs := Generate(t, len(buf))
	if len(coeffs) != len(buf) || len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, ErrLengthMismatched
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// Energy returns sum(w[n]^2), the normalization of a power spectral density.
func Energy(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	return floats.Dot(coeffs, coeffs)
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, ErrEmpty
	}

	sum := floats.Sum(coeffs)
	if sum == 0 {
		return 0, ErrZeroGain
	}

	return float64(len(coeffs)) * Energy(coeffs) / (sum * sum), nil
}
