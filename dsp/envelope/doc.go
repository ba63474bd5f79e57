// Package envelope computes the amplitude envelope of a real signal as the
// magnitude of its analytic signal.
//
// The analytic signal is formed in the frequency domain: the DC and Nyquist
// bins are kept, positive-frequency bins are doubled and negative-frequency
// bins are cleared before the inverse transform. [Extract] is generic over a
// [numeric.Kernel], so the same code serves the float64 reference path and
// the Q15 fixed-point path.
//
// Input lengths must be powers of two.
package envelope
