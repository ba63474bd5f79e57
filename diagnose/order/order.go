package order

import (
	"errors"
	"fmt"

	"github.com/cwbudde/rotorfd/dsp/interp"
)

const (
	// DefaultSamplesPerRevolution is the angular resolution used by the
	// pipeline.
	DefaultSamplesPerRevolution = 1024
	// DefaultThreshold is the tachometer level separating low from high.
	DefaultThreshold = 0.5
)

var (
	// ErrTooFewEdges means the tachometer showed fewer than two rising
	// edges, so no full revolution is available.
	ErrTooFewEdges = errors.New("order: fewer than 2 tachometer edges")
	// ErrTooFewSamples means the angle-domain buffer is shorter than two
	// revolutions.
	ErrTooFewSamples = errors.New("order: fewer than 2 revolutions resampled")
)

// DetectEdges returns the indices where tach rises from <= threshold to
// > threshold, in order. The index is that of the first high sample.
func DetectEdges(tach []float64, threshold float64) []int {
	if len(tach) == 0 {
		return nil
	}
	var edges []int
	prevHigh := tach[0] > threshold
	for i := 1; i < len(tach); i++ {
		high := tach[i] > threshold
		if !prevHigh && high {
			edges = append(edges, i)
		}
		prevHigh = high
	}
	return edges
}

// ResampleEqualAngle resamples env at perRev equally spaced points within
// every revolution delimited by consecutive edges, returning
// (len(edges)-1)·perRev samples, or nil with fewer than two edges.
//
// Point m of a revolution starting at edge i0 and ending at i1 is taken at
// fractional sample index i0 + m/perRev·(i1−i0), interpolated linearly and
// clamped to the ends of env.
func ResampleEqualAngle(env []float64, sampleRate float64, edges []int, perRev int) []float64 {
	if len(edges) < 2 || perRev <= 0 {
		return nil
	}
	s := interp.NewSampler(env, sampleRate)
	out := make([]float64, 0, (len(edges)-1)*perRev)
	for e := 0; e < len(edges)-1; e++ {
		t0 := float64(edges[e]) / sampleRate
		t1 := float64(edges[e+1]) / sampleRate
		for m := range perRev {
			alpha := float64(m) / float64(perRev)
			out = append(out, s.At(t0+alpha*(t1-t0)))
		}
	}
	return out
}

// Track detects tachometer edges and resamples env into the angle domain.
// It returns [ErrTooFewEdges] with fewer than two edges and
// [ErrTooFewSamples] when fewer than 2·perRev samples result; in both cases
// the edge indices found so far are returned.
func Track(env, tach []float64, sampleRate, threshold float64, perRev int) (angle []float64, edges []int, err error) {
	if perRev <= 0 {
		return nil, nil, fmt.Errorf("order: samples per revolution must be > 0: %d", perRev)
	}
	edges = DetectEdges(tach, threshold)
	if len(edges) < 2 {
		return nil, edges, fmt.Errorf("%w: found %d", ErrTooFewEdges, len(edges))
	}
	angle = ResampleEqualAngle(env, sampleRate, edges, perRev)
	if len(angle) < 2*perRev {
		return nil, edges, fmt.Errorf("%w: %d < %d", ErrTooFewSamples, len(angle), 2*perRev)
	}
	return angle, edges, nil
}
