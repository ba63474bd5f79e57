package numeric

import "github.com/cwbudde/rotorfd/dsp/fixed"

// Q15 is the saturating fixed-point kernel. Its butterflies halve both
// outputs, so a forward transform of length N is scaled by 1/N and no extra
// normalization follows an inverse transform. Magnitudes use
// [fixed.AbsApprox].
var Q15 Kernel[fixed.Q15, fixed.Complex] = q15Kernel{}

type q15Kernel struct{}

func (q15Kernel) Twiddle(re, im float64) fixed.Complex {
	return fixed.ComplexFromFloat(re, im)
}

func (q15Kernel) Butterfly(u, v, w fixed.Complex) (fixed.Complex, fixed.Complex) {
	t := fixed.CMul(v, w)
	return fixed.CHalf(fixed.CAdd(u, t)), fixed.CHalf(fixed.CSub(u, t))
}

func (q15Kernel) InverseScale([]fixed.Complex) {}

func (q15Kernel) Lift(x fixed.Q15) fixed.Complex {
	return fixed.Complex{Re: x}
}

func (q15Kernel) Double(c fixed.Complex) fixed.Complex {
	return fixed.CDouble(c)
}

func (q15Kernel) Magnitude(dst []fixed.Q15, src []fixed.Complex) {
	for i, z := range src {
		dst[i] = fixed.AbsApprox(z)
	}
}

func (q15Kernel) Quantize(coeffs []float64) []fixed.Q15 {
	return fixed.Quantize(coeffs)
}

func (q15Kernel) Float(x fixed.Q15) float64 { return x.Float() }

func (q15Kernel) FromFloat(x float64) fixed.Q15 { return fixed.FromFloat(x) }

func (q15Kernel) Window(dst []fixed.Complex, x, w []fixed.Q15) {
	for i := range x {
		dst[i] = fixed.Complex{Re: fixed.Mul(x[i], w[i])}
	}
}

func (q15Kernel) AccumulatePower(dst []float64, bins []fixed.Complex) {
	for i, z := range bins {
		re, im := z.Re.Float(), z.Im.Float()
		dst[i] += re*re + im*im
	}
}
