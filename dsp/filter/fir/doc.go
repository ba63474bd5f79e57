// Package fir provides windowed-sinc band-pass design and a direct-form FIR
// runtime in floating point and Q15.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line; [FilterQ15] does the same with a wide
// accumulator, round-half-up output and saturation. [Convolve] and
// [ConvolveQ15] run a fresh filter over a whole buffer, which is causal
// convolution with zero history before the first sample.
package fir
