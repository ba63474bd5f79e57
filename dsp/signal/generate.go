package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/rotorfd/dsp/core"
)

// DefaultSeed is the noise seed used unless [WithSeed] overrides it.
const DefaultSeed int64 = 7

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	acq  core.Acquisition
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.Option) *Generator {
	return &Generator{
		acq:  core.NewAcquisition(opts...),
		seed: DefaultSeed,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.Option, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Acquisition returns the sampling the generator emulates.
func (g *Generator) Acquisition() core.Acquisition {
	return g.acq
}

// Samples returns the sample count for a duration in seconds, truncated.
func (g *Generator) Samples(duration float64) int {
	return g.acq.Samples(duration)
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.check("sine", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.acq.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// GaussianNoise generates zero-mean Gaussian noise with standard deviation
// sigma using the Box-Muller transform.
func (g *Generator) GaussianNoise(sigma float64, samples int) ([]float64, error) {
	if err := g.check("noise", samples); err != nil {
		return nil, err
	}
	if sigma < 0 {
		return nil, fmt.Errorf("noise sigma must be >= 0: %f", sigma)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = sigma * boxMuller(rng)
	}
	return out, nil
}

// Tachometer generates a square wave at freqHz: 0 during the first half of
// each cycle and 1 during the second, so each cycle has one rising edge.
func (g *Generator) Tachometer(freqHz float64, samples int) ([]float64, error) {
	if err := g.check("tach", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		t := float64(i) / g.acq.SampleRate
		if math.Mod(2*math.Pi*freqHz*t, 2*math.Pi) >= math.Pi {
			out[i] = 1
		}
	}
	return out, nil
}

func (g *Generator) check(kind string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", kind, samples)
	}
	if g.acq.SampleRate <= 0 {
		return fmt.Errorf("%s sample rate must be > 0: %f", kind, g.acq.SampleRate)
	}
	return nil
}

// boxMuller draws one standard normal value from two uniforms in (0, 1].
func boxMuller(rng *rand.Rand) float64 {
	u1 := 1 - rng.Float64()
	u2 := 1 - rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
