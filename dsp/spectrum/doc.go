// Package spectrum estimates one-sided power spectral densities with
// Welch's averaged periodogram.
//
// [Welch] is generic over a [numeric.Kernel]: the float64 kernel is the
// reference and the Q15 kernel mirrors it in saturating fixed point. Power
// is always accumulated in float64.
package spectrum
