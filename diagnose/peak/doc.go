// Package peak matches predicted characteristic frequencies against a power
// spectrum.
//
// [Match] looks for the strongest local maximum within a relative tolerance
// of the target and grades it by its SNR over a ring-shaped noise floor:
// the mean of up to ±30 neighbouring bins, excluding a ±3 bin guard around
// the peak. [MatchHarmonics] retries at integer multiples of the target when
// the fundamental is not found.
package peak
