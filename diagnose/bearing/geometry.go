package bearing

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned by [Geometry.Validate].
var ErrInvalidGeometry = errors.New("bearing: invalid geometry")

// Geometry describes one bearing and its shaft speed.
type Geometry struct {
	Elements        int     // number of rolling elements n
	BallDiameter    float64 // d, any length unit
	PitchDiameter   float64 // D, same unit as d
	ContactAngleDeg float64 // β in degrees
	ShaftRPM        float64
}

// DefaultGeometry returns an 8-element bearing (d=10 mm, D=50 mm, β=0)
// turning at 1800 rpm.
func DefaultGeometry() Geometry {
	return Geometry{
		Elements:      8,
		BallDiameter:  0.010,
		PitchDiameter: 0.050,
		ShaftRPM:      1800,
	}
}

// Validate reports whether g describes a physical bearing.
func (g Geometry) Validate() error {
	switch {
	case g.Elements <= 0:
		return fmt.Errorf("%w: element count must be > 0: %d", ErrInvalidGeometry, g.Elements)
	case g.BallDiameter <= 0:
		return fmt.Errorf("%w: ball diameter must be > 0: %g", ErrInvalidGeometry, g.BallDiameter)
	case g.PitchDiameter <= g.BallDiameter:
		return fmt.Errorf("%w: pitch diameter %g must exceed ball diameter %g",
			ErrInvalidGeometry, g.PitchDiameter, g.BallDiameter)
	case g.ShaftRPM <= 0:
		return fmt.Errorf("%w: shaft speed must be > 0: %g rpm", ErrInvalidGeometry, g.ShaftRPM)
	}
	return nil
}

// ShaftHz returns the shaft rotation frequency fr.
func (g Geometry) ShaftHz() float64 {
	return g.ShaftRPM / 60
}

// ratio returns d/D·cos β.
func (g Geometry) ratio() float64 {
	return g.BallDiameter / g.PitchDiameter * math.Cos(g.ContactAngleDeg*math.Pi/180)
}

// Frequencies returns the predicted characteristic frequencies in Hz.
func (g Geometry) Frequencies() Frequencies {
	fr := g.ShaftHz()
	r := g.ratio()
	n := float64(g.Elements)
	return Frequencies{
		Shaft: fr,
		BPFO:  0.5 * n * fr * (1 - r),
		BPFI:  0.5 * n * fr * (1 + r),
		BSF:   g.PitchDiameter / (2 * g.BallDiameter) * fr * (1 - r*r),
		FTF:   0.5 * fr * (1 - r),
	}
}

// Orders returns the characteristic frequencies normalized by shaft speed.
// Shaft is 1.
func (g Geometry) Orders() Frequencies {
	f := g.Frequencies()
	fr := f.Shaft
	return Frequencies{
		Shaft: 1,
		BPFO:  f.BPFO / fr,
		BPFI:  f.BPFI / fr,
		BSF:   f.BSF / fr,
		FTF:   f.FTF / fr,
	}
}
