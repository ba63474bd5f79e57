package fft

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/rotorfd/dsp/core"
	"github.com/cwbudde/rotorfd/dsp/numeric"
)

// Transformer is an in-place complex128 transform backend. Inverse output
// is normalized by 1/N.
type Transformer interface {
	Forward(buf []complex128)
	Inverse(buf []complex128)
}

// Radix2 runs [Transform] with the float kernel.
type Radix2 struct{}

// Forward transforms buf in place.
func (Radix2) Forward(buf []complex128) { Transform(numeric.Float64, buf, Forward) }

// Inverse transforms buf in place and scales by 1/N.
func (Radix2) Inverse(buf []complex128) { Transform(numeric.Float64, buf, Inverse) }

// Planned delegates to algo-fft plans, cached per length. It is safe for
// concurrent use.
type Planned struct {
	mu    sync.Mutex
	plans map[int]*algofft.Plan[complex128]
}

// NewPlanned returns an empty plan cache.
func NewPlanned() *Planned {
	return &Planned{plans: make(map[int]*algofft.Plan[complex128])}
}

func (p *Planned) plan(n int) *algofft.Plan[complex128] {
	if !core.IsPowerOfTwo(n) {
		panic(fmt.Sprintf("fft: length %d is not a power of two", n))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.plans == nil {
		p.plans = make(map[int]*algofft.Plan[complex128])
	}
	if plan, ok := p.plans[n]; ok {
		return plan
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		panic(fmt.Sprintf("fft: create plan for length %d: %v", n, err))
	}
	p.plans[n] = plan
	return plan
}

// Forward transforms buf in place.
func (p *Planned) Forward(buf []complex128) {
	if err := p.plan(len(buf)).Forward(buf, buf); err != nil {
		panic(fmt.Sprintf("fft: forward transform: %v", err))
	}
}

// Inverse transforms buf in place and scales by 1/N.
func (p *Planned) Inverse(buf []complex128) {
	if err := p.plan(len(buf)).Inverse(buf, buf); err != nil {
		panic(fmt.Sprintf("fft: inverse transform: %v", err))
	}
}

// Backend names a float transform backend in configuration.
type Backend string

const (
	BackendRadix2  Backend = "radix2"
	BackendPlanned Backend = "planned"
)

// NewTransformer returns the transformer for a backend name.
func NewTransformer(b Backend) (Transformer, error) {
	switch b {
	case "", BackendRadix2:
		return Radix2{}, nil
	case BackendPlanned:
		return NewPlanned(), nil
	default:
		return nil, fmt.Errorf("fft: unknown backend %q", b)
	}
}
