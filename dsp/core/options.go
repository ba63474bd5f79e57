package core

// DefaultSampleRate is the acquisition rate of a standard vibration channel
// in Hz.
const DefaultSampleRate = 51200

// Acquisition describes how a vibration channel was sampled.
type Acquisition struct {
	SampleRate float64 // Hz
}

// Option adjusts an Acquisition.
type Option func(*Acquisition)

// WithSampleRate sets the sample rate. Non-positive rates are ignored.
func WithSampleRate(fs float64) Option {
	return func(a *Acquisition) {
		if fs > 0 {
			a.SampleRate = fs
		}
	}
}

// NewAcquisition returns the default acquisition with opts applied in
// order. Nil options are skipped.
func NewAcquisition(opts ...Option) Acquisition {
	a := Acquisition{SampleRate: DefaultSampleRate}
	for _, opt := range opts {
		if opt != nil {
			opt(&a)
		}
	}
	return a
}

// Nyquist returns half the sample rate.
func (a Acquisition) Nyquist() float64 {
	return a.SampleRate / 2
}

// Samples returns the number of whole samples in seconds.
func (a Acquisition) Samples(seconds float64) int {
	return int(a.SampleRate * seconds)
}

// Duration returns the length of n samples in seconds, 0 for an unset rate.
func (a Acquisition) Duration(n int) float64 {
	if a.SampleRate <= 0 {
		return 0
	}
	return float64(n) / a.SampleRate
}
