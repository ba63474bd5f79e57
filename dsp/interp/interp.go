package interp

import "math"

// Linear2 interpolates linearly from x0 to x1 at frac in [0,1].
func Linear2(frac, x0, x1 float64) float64 {
	return x0 + frac*(x1-x0)
}

// LinearAt samples x at fractional index pos with linear interpolation.
//
// Positions before the first sample return x[0]; positions at or past the
// last sample return x[len(x)-1]. An empty x yields 0.
func LinearAt(x []float64, pos float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	if pos <= 0 || math.IsNaN(pos) {
		return x[0]
	}
	if pos >= float64(n-1) {
		return x[n-1]
	}
	i := int(pos)
	return Linear2(pos-float64(i), x[i], x[i+1])
}

// Sampler samples a sequence recorded at a fixed rate at arbitrary times.
type Sampler struct {
	x          []float64
	sampleRate float64
}

// NewSampler wraps x, sampled at sampleRate Hz. x is not copied.
func NewSampler(x []float64, sampleRate float64) *Sampler {
	return &Sampler{x: x, sampleRate: sampleRate}
}

// At returns the linearly interpolated value at time t seconds, clamped to
// the recorded range.
func (s *Sampler) At(t float64) float64 {
	return LinearAt(s.x, t*s.sampleRate)
}

// Duration returns the time of the last sample in seconds.
func (s *Sampler) Duration() float64 {
	if len(s.x) == 0 {
		return 0
	}
	return float64(len(s.x)-1) / s.sampleRate
}
