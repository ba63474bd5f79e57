// Package pipeline runs the complete bearing diagnosis on one captured
// waveform.
//
// The stages are: optional Q15 headroom scan, FIR band-pass around the
// structural resonance, zero padding to a power of two, analytic-signal
// envelope, Welch PSD of the envelope, matching of the predicted bearing
// lines, optional tachometer order tracking with a second match in the
// order domain, and the fault decision.
//
// With [Config.Fixed] set, filtering, envelope and PSD run in saturating
// Q15 arithmetic so the results show what a fixed-point target would see.
package pipeline
