package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/rotorfd/dsp/spectrum"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// AMTone returns (1 + depth·cos(2π·modBin·n/N))·cos(2π·carrierBin·n/N) for
// n in [0, length). Both tones sit exactly on transform bins of length N.
func AMTone(length, carrierBin, modBin int, depth float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		ph := float64(i) / float64(length)
		out[i] = (1 + depth*math.Cos(2*math.Pi*float64(modBin)*ph)) *
			math.Cos(2*math.Pi*float64(carrierBin)*ph)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// FlatSpectrum returns n bins spaced df apart, every bin at the given power.
func FlatSpectrum(n int, df, power float64) spectrum.Spectrum {
	s := spectrum.Spectrum{
		Frequencies: make([]float64, n),
		Power:       make([]float64, n),
	}
	for i := range s.Power {
		s.Frequencies[i] = float64(i) * df
		s.Power[i] = power
	}
	return s
}
