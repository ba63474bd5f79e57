package fft

import (
	"fmt"
	"math"

	"github.com/cwbudde/rotorfd/dsp/core"
	"github.com/cwbudde/rotorfd/dsp/numeric"
)

// Direction selects the transform sign.
type Direction int

const (
	// Forward computes X[k] = sum x[n] e^{-2πikn/N}.
	Forward Direction = iota
	// Inverse computes the conjugate-sign transform followed by the kernel's
	// inverse normalization.
	Inverse
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Inverse {
		return "inverse"
	}
	return "forward"
}

// Transform runs an in-place radix-2 transform of buf.
//
// len(buf) must be a power of two; anything else is a wiring bug and panics.
func Transform[S, C any](k numeric.Kernel[S, C], buf []C, dir Direction) {
	n := len(buf)
	if !core.IsPowerOfTwo(n) {
		panic(fmt.Sprintf("fft: length %d is not a power of two", n))
	}

	bitReverse(buf)

	sign := -1.0
	if dir == Inverse {
		sign = 1.0
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		ang := sign * 2 * math.Pi / float64(size)
		stepRe, stepIm := math.Cos(ang), math.Sin(ang)
		for start := 0; start < n; start += size {
			wr, wi := 1.0, 0.0
			for j := range half {
				w := k.Twiddle(wr, wi)
				a, b := start+j, start+j+half
				buf[a], buf[b] = k.Butterfly(buf[a], buf[b], w)
				wr, wi = wr*stepRe-wi*stepIm, wr*stepIm+wi*stepRe
			}
		}
	}

	if dir == Inverse {
		k.InverseScale(buf)
	}
}

func bitReverse[C any](buf []C) {
	n := len(buf)
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
}
