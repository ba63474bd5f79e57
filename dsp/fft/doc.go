// Package fft provides the in-place iterative radix-2 transform used by the
// analysis stages.
//
// [Transform] is generic over a [numeric.Kernel], so the floating-point and
// Q15 paths share one bit-reversal and butterfly network. Twiddle factors are
// advanced per stage from the stage length rather than looked up in a table.
//
// For the float path a [Transformer] abstracts the backend: [Radix2] runs
// the kernel transform, [Planned] delegates to cached algo-fft plans.
package fft
