// Package condition computes time-domain condition indicators of a
// vibration capture. Impacting bearing defects raise the crest factor and
// kurtosis of the raw acceleration well before its RMS moves.
package condition

import "math"

// GaussianKurtosis is the kurtosis of a normally distributed signal, the
// baseline of a healthy machine.
const GaussianKurtosis = 3

// Indicators holds the condition indicators of one capture.
type Indicators struct {
	Samples     int
	Mean        float64
	RMS         float64
	Peak        float64 // max |x|
	PeakToPeak  float64
	CrestFactor float64 // Peak / RMS, 0 for a silent signal
	Skewness    float64
	Kurtosis    float64 // fourth standardized moment, 3 for Gaussian noise
}

// Compute returns the indicators of x in a single pass. Higher moments use
// Welford's update so large DC offsets do not cancel.
func Compute(x []float64) Indicators {
	n := len(x)
	if n == 0 {
		return Indicators{}
	}

	var mean, m2, m3, m4, sumSq float64
	hi, lo := x[0], x[0]
	for i, v := range x {
		k := float64(i + 1)
		delta := v - mean
		dk := delta / k
		dk2 := dk * dk
		term := delta * dk * float64(i)

		// m4 before m3 before m2.
		m4 += term*dk2*(k*k-3*k+3) + 6*dk2*m2 - 4*dk*m3
		m3 += term*dk*(k-2) - 3*dk*m2
		m2 += term
		mean += dk

		sumSq += v * v
		hi = max(hi, v)
		lo = min(lo, v)
	}

	nf := float64(n)
	ind := Indicators{
		Samples:    n,
		Mean:       mean,
		RMS:        math.Sqrt(sumSq / nf),
		Peak:       max(math.Abs(hi), math.Abs(lo)),
		PeakToPeak: hi - lo,
	}
	if ind.RMS > 0 {
		ind.CrestFactor = ind.Peak / ind.RMS
	}
	if variance := m2 / nf; variance > 0 {
		ind.Skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		ind.Kurtosis = (m4 / nf) / (variance * variance)
	}
	return ind
}

// Impulsive reports whether the kurtosis exceeds the Gaussian baseline by
// more than margin.
func (ind Indicators) Impulsive(margin float64) bool {
	return ind.Kurtosis > GaussianKurtosis+margin
}
