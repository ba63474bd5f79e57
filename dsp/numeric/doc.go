// Package numeric defines the arithmetic capability shared by the transform,
// envelope and spectral-estimation stages.
//
// Every stage is written once against [Kernel] and instantiated for two
// representations: [Float64] (float64 samples, complex128 bins) and [Q15]
// (saturating 16-bit fixed point). Behavioural differences between the two,
// such as per-stage transform scaling or the square-root-free magnitude of
// the fixed-point path, live in the kernel rather than in the algorithms.
package numeric
