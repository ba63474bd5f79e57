package fir

import (
	"math"

	"github.com/cwbudde/rotorfd/dsp/fixed"
)

// FilterQ15 is the Q15 counterpart of [Filter]. Products accumulate in 64
// bits; the output adds half an LSB, shifts right by 15 and saturates.
type FilterQ15 struct {
	rev  []fixed.Q15
	line delayLine[fixed.Q15]
}

// NewQ15 creates a Q15 filter from the taps h, which are copied.
func NewQ15(h []fixed.Q15) *FilterQ15 {
	return &FilterQ15{rev: reversed(h), line: newDelayLine[fixed.Q15](len(h))}
}

// ProcessSample filters one Q15 sample.
func (f *FilterQ15) ProcessSample(x fixed.Q15) fixed.Q15 {
	if len(f.rev) == 0 {
		return 0
	}
	var acc int64
	for j, v := range f.line.push(x) {
		acc += int64(f.rev[j]) * int64(v)
	}

	acc = (acc + 1<<14) >> 15
	switch {
	case acc > math.MaxInt16:
		return fixed.One
	case acc < math.MinInt16:
		return fixed.MinusOne
	default:
		return fixed.Q15(acc)
	}
}

// ProcessBlockTo filters src into dst, which must be at least as long.
func (f *FilterQ15) ProcessBlockTo(dst, src []fixed.Q15) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the filter history.
func (f *FilterQ15) Reset() { f.line.reset() }

// ConvolveQ15 is [Convolve] in Q15 arithmetic.
func ConvolveQ15(x, h []fixed.Q15) []fixed.Q15 {
	out := make([]fixed.Q15, len(x))
	NewQ15(h).ProcessBlockTo(out, x)
	return out
}
