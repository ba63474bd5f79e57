package pipeline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/rotorfd/diagnose/order"
	"github.com/cwbudde/rotorfd/diagnose/peak"
	"github.com/cwbudde/rotorfd/dsp/fft"
)

// ErrInvalidConfig wraps every [Config.Validate] failure.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Config holds the analysis parameters.
type Config struct {
	SampleRate           float64
	BandLowHz            float64
	BandHighHz           float64
	Taps                 int
	SegmentLength        int // requested Welch segment; shrunk to fit the signal
	Peak                 peak.Settings
	OrderTracking        bool
	SamplesPerRevolution int
	TachThreshold        float64
	Q15Simulate          bool
	Fixed                bool
	Backend              fft.Backend
}

// DefaultConfig returns the standard configuration: 51.2 kHz sampling, a
// 4–8 kHz band-pass with 257 taps and 65536-sample Welch segments.
func DefaultConfig() Config {
	return Config{
		SampleRate:           51200,
		BandLowHz:            4000,
		BandHighHz:           8000,
		Taps:                 257,
		SegmentLength:        65536,
		Peak:                 peak.DefaultSettings(),
		SamplesPerRevolution: order.DefaultSamplesPerRevolution,
		TachThreshold:        order.DefaultThreshold,
		Backend:              fft.BackendRadix2,
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(fs float64) Option {
	return func(c *Config) { c.SampleRate = fs }
}

// WithBand sets the band-pass edges in Hz.
func WithBand(lowHz, highHz float64) Option {
	return func(c *Config) {
		c.BandLowHz = lowHz
		c.BandHighHz = highHz
	}
}

// WithSegmentLength sets the requested Welch segment length.
func WithSegmentLength(n int) Option {
	return func(c *Config) { c.SegmentLength = n }
}

// WithTaps sets the FIR length.
func WithTaps(n int) Option {
	return func(c *Config) { c.Taps = n }
}

// WithPeakSettings replaces the matching thresholds.
func WithPeakSettings(s peak.Settings) Option {
	return func(c *Config) { c.Peak = s }
}

// WithOrderTracking enables the order-domain pass.
func WithOrderTracking(on bool) Option {
	return func(c *Config) { c.OrderTracking = on }
}

// WithQ15Simulate enables the Q15 headroom scan of the raw samples.
func WithQ15Simulate(on bool) Option {
	return func(c *Config) { c.Q15Simulate = on }
}

// WithFixed selects the Q15 processing path.
func WithFixed(on bool) Option {
	return func(c *Config) { c.Fixed = on }
}

// WithBackend selects the float transform backend.
func WithBackend(b fft.Backend) Option {
	return func(c *Config) { c.Backend = b }
}

// ApplyOptions returns DefaultConfig with opts applied in order.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate checks the parameters that would otherwise fail deep inside a
// stage. Band edges and tap count are checked by the FIR designer.
func (c Config) Validate() error {
	var errs []error
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate must be > 0: %g", c.SampleRate))
	}
	if c.SegmentLength < 1 {
		errs = append(errs, fmt.Errorf("segment length must be >= 1: %d", c.SegmentLength))
	}
	if c.Peak.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("peak tolerance must be > 0: %g", c.Peak.Tolerance))
	}
	if c.SamplesPerRevolution < 1 {
		errs = append(errs, fmt.Errorf("samples per revolution must be >= 1: %d", c.SamplesPerRevolution))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
