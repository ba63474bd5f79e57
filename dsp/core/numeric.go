package core

import "math"

// Clamp limits v to [lo, hi]; swapped bounds are reordered.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// DBPowerToLinear converts a power level in dB to a linear ratio.
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// LinearPowerToDB converts a linear power ratio to dB. Zero maps to -Inf
// and negative ratios to NaN.
func LinearPowerToDB(p float64) float64 {
	switch {
	case p < 0:
		return math.NaN()
	case p == 0:
		return math.Inf(-1)
	}
	return 10 * math.Log10(p)
}
