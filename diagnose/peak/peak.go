package peak

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/rotorfd/dsp/core"
	"github.com/cwbudde/rotorfd/dsp/spectrum"
)

const (
	// RingHalfWidth is the noise ring extent on each side of a peak, in bins.
	RingHalfWidth = 30
	// GuardHalfWidth is the number of bins on each side of a peak excluded
	// from the noise ring.
	GuardHalfWidth = 3

	powerFloor = 1e-20
)

// Hit is the outcome of matching one target frequency.
//
// When Found is false the remaining fields describe the best candidate, if
// any, and must not be read as a detection.
type Hit struct {
	Found      bool
	Index      int
	Frequency  float64
	SNRDB      float64
	BinSpacing float64
	// Harmonic is 0 for a fundamental match, otherwise the multiple of the
	// target that matched.
	Harmonic int
}

// Match returns the strongest interior local maximum of s whose frequency is
// within tolerance (relative) of target. Ties keep the lowest index. The hit
// is Found when its SNR reaches minSNRDB.
//
// Match panics if target is not positive.
func Match(s spectrum.Spectrum, target, tolerance, minSNRDB float64) Hit {
	if !(target > 0) {
		panic(fmt.Sprintf("peak: target frequency must be > 0: %g", target))
	}

	p := s.Power
	best := -1
	for i := 1; i < len(p)-1; i++ {
		if !(p[i] > p[i-1] && p[i] > p[i+1]) {
			continue
		}
		if math.Abs(s.Frequencies[i]-target)/target > tolerance {
			continue
		}
		if best < 0 || p[i] > p[best] {
			best = i
		}
	}
	if best < 0 {
		return Hit{}
	}

	snr := SNRDB(p, best)
	return Hit{
		Found:      snr >= minSNRDB,
		Index:      best,
		Frequency:  s.Frequencies[best],
		SNRDB:      snr,
		BinSpacing: s.BinSpacing(),
	}
}

// NoiseFloor returns the mean power of the ring around bin idx, clamped to
// the spectrum bounds, or 1e-20 when the ring is empty or quieter than that.
func NoiseFloor(power []float64, idx int) float64 {
	lo := max(idx-RingHalfWidth, 0)
	hi := min(idx+RingHalfWidth, len(power)-1)

	ring := make([]float64, 0, 2*RingHalfWidth)
	for i := lo; i <= hi; i++ {
		if i >= idx-GuardHalfWidth && i <= idx+GuardHalfWidth {
			continue
		}
		ring = append(ring, power[i])
	}
	if len(ring) == 0 {
		return powerFloor
	}
	return math.Max(stat.Mean(ring, nil), powerFloor)
}

// SNRDB returns the power of bin idx over its ring noise floor, in dB.
func SNRDB(power []float64, idx int) float64 {
	return core.LinearPowerToDB(power[idx] / NoiseFloor(power, idx))
}
