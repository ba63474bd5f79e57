package fixed

// Complex is a Q15 complex sample.
type Complex struct {
	Re, Im Q15
}

// ComplexFromFloat quantizes both parts of a float complex value.
func ComplexFromFloat(re, im float64) Complex {
	return Complex{Re: FromFloat(re), Im: FromFloat(im)}
}

// Complex128 returns z as a float complex value.
func (z Complex) Complex128() complex128 {
	return complex(z.Re.Float(), z.Im.Float())
}

// CAdd returns a+b with per-part saturation.
func CAdd(a, b Complex) Complex {
	return Complex{Re: Add(a.Re, b.Re), Im: Add(a.Im, b.Im)}
}

// CSub returns a-b with per-part saturation.
func CSub(a, b Complex) Complex {
	return Complex{Re: Sub(a.Re, b.Re), Im: Sub(a.Im, b.Im)}
}

// CMul returns a*b. Cross products are summed at full precision before the
// rounded shift, so only the final result saturates.
func CMul(a, b Complex) Complex {
	pr := int64(a.Re)*int64(b.Re) - int64(a.Im)*int64(b.Im)
	pi := int64(a.Re)*int64(b.Im) + int64(a.Im)*int64(b.Re)
	return Complex{
		Re: saturate64((pr + halfLSB) >> 15),
		Im: saturate64((pi + halfLSB) >> 15),
	}
}

// CHalf shifts both parts right by one bit.
func CHalf(z Complex) Complex {
	return Complex{Re: Half(z.Re), Im: Half(z.Im)}
}

// CDouble doubles both parts with saturation.
func CDouble(z Complex) Complex {
	return Complex{Re: Double(z.Re), Im: Double(z.Im)}
}

// AbsApprox approximates |z| as max(|re|,|im|) + min(|re|,|im|)/2, avoiding
// a square root. The estimate overshoots the true magnitude by at most ~12%.
func AbsApprox(z Complex) Q15 {
	ar := int32(Abs(z.Re))
	ai := int32(Abs(z.Im))
	hi, lo := ar, ai
	if ai > ar {
		hi, lo = ai, ar
	}
	return Saturate(hi + lo>>1)
}
