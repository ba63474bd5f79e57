package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/rotorfd/dsp/spectrum"
)

func ExampleFloat64() {
	const fs = 1000.0
	x := make([]float64, 1000)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 125 * float64(i) / fs)
	}

	seg := spectrum.SegmentLength(512, len(x))
	s := spectrum.Float64(x, seg, seg/2, fs)

	peak := 0
	for i, p := range s.Power {
		if p > s.Power[peak] {
			peak = i
		}
	}
	fmt.Println(seg, s.Len())
	fmt.Printf("%.1f Hz\n", s.Frequencies[peak])
	// Output:
	// 512 257
	// 125.0 Hz
}
