package spectrum

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/rotorfd/dsp/core"
)

// Spectrum is a one-sided PSD: Power[i] is the density at Frequencies[i].
type Spectrum struct {
	Frequencies []float64
	Power       []float64
}

// Len returns the number of bins.
func (s Spectrum) Len() int { return len(s.Power) }

// BinSpacing returns the frequency step between adjacent bins, or 0 for
// spectra with fewer than two bins.
func (s Spectrum) BinSpacing() float64 {
	if len(s.Frequencies) < 2 {
		return 0
	}
	return s.Frequencies[1] - s.Frequencies[0]
}

// SegmentLength returns the largest power of two that is no greater than
// both requested and n.
func SegmentLength(requested, n int) int {
	if requested > n {
		requested = n
	}
	return core.LargestPowerOfTwoAtMost(requested)
}

// normalize converts accumulated periodogram power into a one-sided
// density and fills the frequency axis.
func normalize(acc []float64, segment, count int, energy, sampleRate float64) Spectrum {
	k := len(acc)
	power := make([]float64, k)
	vecmath.ScaleBlock(power, acc, 2/(float64(count)*energy*sampleRate))
	power[0] *= 0.5
	if segment%2 == 0 {
		power[segment/2] *= 0.5
	}

	freqs := make([]float64, k)
	for i := range freqs {
		freqs[i] = sampleRate * float64(i) / float64(segment)
	}
	return Spectrum{Frequencies: freqs, Power: power}
}
