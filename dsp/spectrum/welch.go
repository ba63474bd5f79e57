package spectrum

import (
	"fmt"

	"github.com/cwbudde/rotorfd/dsp/core"
	"github.com/cwbudde/rotorfd/dsp/fft"
	"github.com/cwbudde/rotorfd/dsp/numeric"
	"github.com/cwbudde/rotorfd/dsp/window"
)

// Welch returns the averaged-periodogram PSD of x using Hann-windowed
// segments of the given length, advancing by segment-overlap samples.
//
// The segment count is max(1, (len(x)-overlap)/(segment-overlap)); a
// trailing segment that would run past the end of x is skipped but still
// counted. The window is quantized by the kernel and its energy is taken
// from the quantized values. The result has segment/2+1 bins spaced
// sampleRate/segment apart.
//
// segment must be a power of two no longer than x and overlap must lie in
// [0, segment); violations panic.
func Welch[S, C any](k numeric.Kernel[S, C], x []S, segment, overlap int, sampleRate float64) Spectrum {
	step := checkSegments(len(x), segment, overlap)
	count := segmentCount(len(x), overlap, step)

	w := k.Quantize(window.Generate(window.TypeHann, segment))
	var energy float64
	for _, v := range w {
		f := k.Float(v)
		energy += f * f
	}

	acc := make([]float64, segment/2+1)
	buf := make([]C, segment)
	for s := range count {
		start := s * step
		if start+segment > len(x) {
			break
		}
		k.Window(buf, x[start:start+segment], w)
		fft.Transform(k, buf, fft.Forward)
		k.AccumulatePower(acc, buf[:len(acc)])
	}

	return normalize(acc, segment, count, energy, sampleRate)
}

// Float64 is Welch with the float64 kernel.
func Float64(x []float64, segment, overlap int, sampleRate float64) Spectrum {
	return Welch(numeric.Float64, x, segment, overlap, sampleRate)
}

// Float64WithTransformer is [Float64] computed with the given transform
// backend.
func Float64WithTransformer(t fft.Transformer, x []float64, segment, overlap int, sampleRate float64) Spectrum {
	step := checkSegments(len(x), segment, overlap)
	count := segmentCount(len(x), overlap, step)

	w := window.Generate(window.TypeHann, segment)
	energy := window.Energy(w)

	acc := make([]float64, segment/2+1)
	buf := make([]complex128, segment)
	for s := range count {
		start := s * step
		if start+segment > len(x) {
			break
		}
		numeric.Float64.Window(buf, x[start:start+segment], w)
		t.Forward(buf)
		numeric.Float64.AccumulatePower(acc, buf[:len(acc)])
	}

	return normalize(acc, segment, count, energy, sampleRate)
}

func checkSegments(n, segment, overlap int) int {
	if !core.IsPowerOfTwo(segment) {
		panic(fmt.Sprintf("spectrum: segment length %d is not a power of two", segment))
	}
	if segment > n {
		panic(fmt.Sprintf("spectrum: segment length %d exceeds signal length %d", segment, n))
	}
	if overlap < 0 || overlap >= segment {
		panic(fmt.Sprintf("spectrum: overlap %d outside [0, %d)", overlap, segment))
	}
	return segment - overlap
}

func segmentCount(n, overlap, step int) int {
	return max(1, (n-overlap)/step)
}
