package numeric

import "github.com/cwbudde/algo-vecmath"

// Float64 is the floating-point reference kernel.
var Float64 Kernel[float64, complex128] = float64Kernel{}

type float64Kernel struct{}

func (float64Kernel) Twiddle(re, im float64) complex128 {
	return complex(re, im)
}

func (float64Kernel) Butterfly(u, v, w complex128) (complex128, complex128) {
	t := v * w
	return u + t, u - t
}

func (float64Kernel) InverseScale(buf []complex128) {
	if len(buf) == 0 {
		return
	}
	inv := complex(1/float64(len(buf)), 0)
	for i := range buf {
		buf[i] *= inv
	}
}

func (float64Kernel) Lift(x float64) complex128 {
	return complex(x, 0)
}

func (float64Kernel) Double(c complex128) complex128 {
	return 2 * c
}

func (float64Kernel) Magnitude(dst []float64, src []complex128) {
	if len(src) == 0 {
		return
	}
	re, im, _, buf := getScratch(len(src))
	split(re, im, src)
	vecmath.Magnitude(dst[:len(src)], re, im)
	putScratch(buf)
}

func (float64Kernel) Quantize(coeffs []float64) []float64 {
	return append([]float64(nil), coeffs...)
}

func (float64Kernel) Float(x float64) float64 { return x }

func (float64Kernel) FromFloat(x float64) float64 { return x }

func (float64Kernel) Window(dst []complex128, x, w []float64) {
	if len(x) == 0 {
		return
	}
	_, _, tmp, buf := getScratch(len(x))
	vecmath.MulBlock(tmp, x, w)
	for i, v := range tmp {
		dst[i] = complex(v, 0)
	}
	putScratch(buf)
}

func (float64Kernel) AccumulatePower(dst []float64, bins []complex128) {
	if len(bins) == 0 {
		return
	}
	re, im, tmp, buf := getScratch(len(bins))
	split(re, im, bins)
	vecmath.Power(tmp, re, im)
	vecmath.AddBlockInPlace(dst[:len(bins)], tmp)
	putScratch(buf)
}
