package fir

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/rotorfd/dsp/window"
)

var (
	// ErrInvalidTaps is returned for tap counts that are even or below 3.
	ErrInvalidTaps = errors.New("fir: tap count must be odd and >= 3")
	// ErrInvalidBand is returned for band edges outside (0, fs/2] or inverted.
	ErrInvalidBand = errors.New("fir: invalid band edges")
)

// DesignBandpass returns taps windowed-sinc band-pass coefficients for the
// band [lowHz, highHz].
//
// The response is the difference of two Hamming-windowed low-pass sincs with
// cutoffs highHz and lowHz. Coefficients are normalized to unit sum unless
// the raw sum is exactly zero, in which case they are returned unscaled.
func DesignBandpass(taps int, sampleRate, lowHz, highHz float64) ([]float64, error) {
	if taps < 3 || taps%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaps, taps)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("fir: sample rate must be > 0: %f", sampleRate)
	}
	if lowHz < 0 || highHz <= lowHz || highHz > sampleRate/2 {
		return nil, fmt.Errorf("%w: [%g, %g] Hz at fs=%g Hz", ErrInvalidBand, lowHz, highHz, sampleRate)
	}

	ham, err := window.Hamming(taps)
	if err != nil {
		return nil, err
	}

	fcHigh := highHz / sampleRate
	fcLow := lowHz / sampleRate
	center := float64(taps-1) / 2

	h := make([]float64, taps)
	for n := range h {
		m := float64(n) - center
		h[n] = ham[n] * (sinc(fcHigh, m) - sinc(fcLow, m))
	}

	if sum := floats.Sum(h); sum != 0 {
		floats.Scale(1/sum, h)
	}
	return h, nil
}

// sinc is the ideal low-pass impulse response sin(2π·fc·m)/(π·m) with its
// limit 2·fc at m = 0.
func sinc(fc, m float64) float64 {
	if m == 0 {
		return 2 * fc
	}
	return math.Sin(2*math.Pi*fc*m) / (math.Pi * m)
}
