package fixed

import "math"

// Q15 is a signed 16-bit fixed-point value with scale 1/32768.
type Q15 int16

const (
	// One is the largest representable value, 1 - 2^-15.
	One Q15 = math.MaxInt16
	// MinusOne is the smallest representable value, -1.0.
	MinusOne Q15 = math.MinInt16

	// MaxFloat is the float value of One.
	MaxFloat = 0.999969482421875

	scale   = 32768.0
	halfLSB = 1 << 14
)

// Saturate clamps a wide intermediate to the Q15 range.
func Saturate(x int32) Q15 {
	if x > math.MaxInt16 {
		return One
	}
	if x < math.MinInt16 {
		return MinusOne
	}
	return Q15(x)
}

func saturate64(x int64) Q15 {
	if x > math.MaxInt16 {
		return One
	}
	if x < math.MinInt16 {
		return MinusOne
	}
	return Q15(x)
}

// FromFloat quantizes x to Q15, rounding half to even and saturating at the
// representable range.
func FromFloat(x float64) Q15 {
	if x >= MaxFloat {
		x = MaxFloat
	}
	if x <= -1 {
		x = -1
	}
	v := int32(math.RoundToEven(x * scale))
	if v == scale {
		v = math.MaxInt16
	}
	return Q15(v)
}

// Float returns the float value of q.
func (q Q15) Float() float64 {
	return float64(q) / scale
}

// Add returns a+b with saturation.
func Add(a, b Q15) Q15 {
	return Saturate(int32(a) + int32(b))
}

// Sub returns a-b with saturation.
func Sub(a, b Q15) Q15 {
	return Saturate(int32(a) - int32(b))
}

// Mul returns a*b rounded to nearest with saturation.
func Mul(a, b Q15) Q15 {
	p := int32(a) * int32(b)
	return Saturate((p + halfLSB) >> 15)
}

// Half returns q shifted right by one bit (arithmetic shift).
func Half(q Q15) Q15 {
	return q >> 1
}

// Double returns 2*q with saturation.
func Double(q Q15) Q15 {
	return Saturate(int32(q) << 1)
}

// Abs returns |q| saturated, so Abs(MinusOne) is One.
func Abs(q Q15) Q15 {
	if q >= 0 {
		return q
	}
	return Saturate(-int32(q))
}

// Quantize converts a float slice into a new Q15 slice.
func Quantize(x []float64) []Q15 {
	out := make([]Q15, len(x))
	for i, v := range x {
		out[i] = FromFloat(v)
	}
	return out
}

// Floats converts a Q15 slice into a new float slice.
func Floats(x []Q15) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v.Float()
	}
	return out
}
