package fir

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// delayLine keeps the last n inputs contiguous by storing every sample at
// pos and pos+n.
type delayLine[T any] struct {
	buf []T
	pos int
}

func newDelayLine[T any](n int) delayLine[T] {
	return delayLine[T]{buf: make([]T, 2*n)}
}

// push stores x and returns the last n inputs, oldest first.
func (d *delayLine[T]) push(x T) []T {
	n := len(d.buf) / 2
	d.buf[d.pos], d.buf[d.pos+n] = x, x
	d.pos++
	if d.pos == n {
		d.pos = 0
	}
	return d.buf[d.pos : d.pos+n]
}

func (d *delayLine[T]) reset() {
	clear(d.buf)
	d.pos = 0
}

// reversed returns a reversed copy of taps, so that a dot product with an
// oldest-first window computes the convolution sum.
func reversed[T any](taps []T) []T {
	r := make([]T, len(taps))
	for k, c := range taps {
		r[len(taps)-1-k] = c
	}
	return r
}

// Filter is a streaming direct-form FIR filter:
//
//	y[n] = Σ h[k]·x[n-k]
type Filter struct {
	rev  []float64
	line delayLine[float64]
}

// New creates a filter from the taps h, which are copied.
func New(h []float64) *Filter {
	return &Filter{rev: reversed(h), line: newDelayLine[float64](len(h))}
}

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	if len(f.rev) == 0 {
		return 0
	}
	return floats.Dot(f.rev, f.line.push(x))
}

// ProcessBlockTo filters src into dst, which must be at least as long.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the filter history.
func (f *Filter) Reset() { f.line.reset() }

// Order returns len(h)-1.
func (f *Filter) Order() int { return len(f.rev) - 1 }

// Response returns H(e^{jω}) at freqHz for the given sample rate.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	n := len(f.rev)
	var h complex128
	for j, c := range f.rev {
		h += complex(c, 0) * cmplx.Rect(1, -w*float64(n-1-j))
	}
	return h
}

// MagnitudeDB returns 20·log10|H| at freqHz.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// Convolve returns the causal convolution of x with h truncated to len(x),
// the output of a filter starting from silence.
func Convolve(x, h []float64) []float64 {
	out := make([]float64, len(x))
	New(h).ProcessBlockTo(out, x)
	return out
}
