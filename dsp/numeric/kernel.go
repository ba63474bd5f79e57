package numeric

// Kernel is the per-representation arithmetic used by the generic stages.
// S is the real sample type, C the complex bin type.
type Kernel[S, C any] interface {
	// Twiddle converts a unit-circle factor computed in float64.
	Twiddle(re, im float64) C
	// Butterfly returns the radix-2 pair u+v*w, u-v*w, including any
	// dynamic-range scaling the representation applies per stage.
	Butterfly(u, v, w C) (C, C)
	// InverseScale normalizes buf after an inverse transform.
	InverseScale(buf []C)

	// Lift widens a real sample into a complex bin with zero imaginary part.
	Lift(x S) C
	// Double returns 2*c.
	Double(c C) C
	// Magnitude writes |src[i]| into dst.
	Magnitude(dst []S, src []C)

	// Quantize converts float coefficients into samples.
	Quantize(coeffs []float64) []S
	// Float returns the float value of a sample.
	Float(x S) float64
	// FromFloat converts a float value into a sample.
	FromFloat(x float64) S
	// Window writes Lift(x[i]*w[i]) into dst.
	Window(dst []C, x, w []S)
	// AccumulatePower adds |bins[i]|^2 into dst.
	AccumulatePower(dst []float64, bins []C)
}
