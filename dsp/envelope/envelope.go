package envelope

import (
	"github.com/cwbudde/rotorfd/dsp/fft"
	"github.com/cwbudde/rotorfd/dsp/numeric"
)

// Extract returns |analytic(x)| computed with kernel k.
//
// With the Q15 kernel the result carries the transform's 1/N scaling.
// Extract panics if len(x) is not a power of two.
func Extract[S, C any](k numeric.Kernel[S, C], x []S) []S {
	buf := make([]C, len(x))
	for i, v := range x {
		buf[i] = k.Lift(v)
	}

	fft.Transform(k, buf, fft.Forward)
	analytic(k, buf)
	fft.Transform(k, buf, fft.Inverse)

	out := make([]S, len(x))
	k.Magnitude(out, buf)
	return out
}

// Float64 is Extract with the float64 kernel.
func Float64(x []float64) []float64 {
	return Extract(numeric.Float64, x)
}

// WithTransformer computes the float envelope using the given transform
// backend instead of the built-in radix-2 kernel.
func WithTransformer(t fft.Transformer, x []float64) []float64 {
	buf := make([]complex128, len(x))
	for i, v := range x {
		buf[i] = complex(v, 0)
	}

	t.Forward(buf)
	analytic(numeric.Float64, buf)
	t.Inverse(buf)

	out := make([]float64, len(x))
	numeric.Float64.Magnitude(out, buf)
	return out
}

// analytic turns a full spectrum into the spectrum of the analytic signal.
func analytic[S, C any](k numeric.Kernel[S, C], bins []C) {
	n := len(bins)
	half := n / 2
	for i := 1; i < half; i++ {
		bins[i] = k.Double(bins[i])
	}
	var zero C
	for i := half + 1; i < n; i++ {
		bins[i] = zero
	}
}
