// Package fixed implements saturating Q15 fixed-point arithmetic.
//
// A [Q15] holds a signed 16-bit value with 15 fractional bits, covering
// [-1.0, 0.999969482421875]. All arithmetic saturates at the representable
// range instead of wrapping, and multiplications round to nearest by adding
// half an LSB before the final shift, which models the behaviour of DSP
// hardware with saturating MAC units.
//
// [Complex] pairs two Q15 values. [Monitor] tracks headroom of a
// floating-point signal that is about to be quantized.
package fixed
