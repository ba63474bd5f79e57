package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/rotorfd/dsp/core"
)

// FaultScenario describes an outer-race style fault signature: a resonance
// carrier amplitude-modulated at the fault frequency, plus additive noise
// and a once-per-revolution tachometer.
type FaultScenario struct {
	CarrierHz float64
	FaultHz   float64
	ShaftHz   float64
	Depth     float64
	SNRDB     float64
}

// DefaultFaultScenario returns a 5 kHz carrier with 50% modulation at
// faultHz and 20 dB SNR.
func DefaultFaultScenario(faultHz, shaftHz float64) FaultScenario {
	return FaultScenario{
		CarrierHz: 5000,
		FaultHz:   faultHz,
		ShaftHz:   shaftHz,
		Depth:     0.5,
		SNRDB:     20,
	}
}

// FaultSignal generates acceleration and tachometer samples for s.
//
// The acceleration is (1 + Depth·sin(2π·FaultHz·t))·sin(2π·CarrierHz·t) with
// Gaussian noise scaled so that mean signal power over noise power equals
// SNRDB.
func (g *Generator) FaultSignal(s FaultScenario, samples int) (acc, tach []float64, err error) {
	if err := g.check("fault", samples); err != nil {
		return nil, nil, err
	}
	if s.CarrierHz <= 0 || s.FaultHz <= 0 || s.ShaftHz <= 0 {
		return nil, nil, fmt.Errorf("fault frequencies must be > 0: carrier=%f fault=%f shaft=%f",
			s.CarrierHz, s.FaultHz, s.ShaftHz)
	}

	acc = make([]float64, samples)
	var sigPow float64
	for i := range acc {
		t := float64(i) / g.acq.SampleRate
		v := (1 + s.Depth*math.Sin(2*math.Pi*s.FaultHz*t)) * math.Sin(2*math.Pi*s.CarrierHz*t)
		acc[i] = v
		sigPow += v * v
	}
	sigPow /= float64(samples)

	noise, err := g.GaussianNoise(math.Sqrt(sigPow/core.DBPowerToLinear(s.SNRDB)), samples)
	if err != nil {
		return nil, nil, err
	}
	for i, n := range noise {
		acc[i] += n
	}

	tach, err = g.Tachometer(s.ShaftHz, samples)
	if err != nil {
		return nil, nil, err
	}
	return acc, tach, nil
}
