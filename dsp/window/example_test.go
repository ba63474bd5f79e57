package window_test

import (
	"fmt"

	"github.com/cwbudde/rotorfd/dsp/window"
)

func ExampleHann() {
	w, _ := window.Hann(5)
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3], w[4])
	// Output:
	// 0.00 0.50 1.00 0.50 0.00
}

func ExampleEnergy() {
	fmt.Printf("%.3f\n", window.Energy([]float64{0.5, 1, 0.5}))
	// Output:
	// 1.500
}
