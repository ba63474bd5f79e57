// Package signal generates deterministic test waveforms for vibration
// analysis: sines, Gaussian noise, and an amplitude-modulated bearing fault
// signature with a matching once-per-revolution tachometer.
//
// All random sources are seeded, so a given [Generator] configuration always
// produces the same samples.
package signal
