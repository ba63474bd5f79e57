package fixed

import (
	"math"

	"github.com/cwbudde/rotorfd/dsp/core"
)

// monitorLimit bounds the recorded peak, the widest value a Q1.15
// accumulator with one guard bit can hold.
const monitorLimit = 1.999

// Monitor tracks the headroom of a float signal ahead of Q15 quantization.
// It is diagnostic only.
type Monitor struct {
	PeakAbs   float64
	Overflows int
}

// Observe records one sample. Values at or beyond ±1.0 count as overflow
// events since they cannot be represented without clipping. The recorded
// peak is clamped to ±1.999.
func (m *Monitor) Observe(v float64) {
	v = core.Clamp(v, -monitorLimit, monitorLimit)
	a := math.Abs(v)
	if a > m.PeakAbs {
		m.PeakAbs = a
	}
	if v <= -1 || v >= 1 {
		m.Overflows++
	}
}

// Scan returns a monitor that has observed every sample of x.
func Scan(x []float64) Monitor {
	var m Monitor
	for _, v := range x {
		m.Observe(v)
	}
	return m
}
