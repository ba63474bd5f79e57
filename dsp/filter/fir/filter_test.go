package fir

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/rotorfd/dsp/fixed"
	"github.com/cwbudde/rotorfd/internal/testutil"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNew(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	f := New(coeffs)
	if f.Order() != 2 {
		t.Fatalf("Order: got %d, want 2", f.Order())
	}
	coeffs[0] = 999
	if y := f.ProcessSample(1); y != 0.25 {
		t.Errorf("New did not copy coefficients: h[0] = %v", y)
	}
}

func TestProcessSample_Impulse(t *testing.T) {
	coeffs := []float64{0.25, 0.5, -0.125, 0.0625}
	f := New(coeffs)

	// Two impulses exercise the delay line wrap.
	x := testutil.Impulse(12, 0)
	x[6] = 1
	y := make([]float64, len(x))
	f.ProcessBlockTo(y, x)

	want := make([]float64, len(x))
	copy(want, coeffs)
	copy(want[6:], coeffs)
	testutil.RequireSliceNearlyEqual(t, y, want, eps)
}

func TestReset(t *testing.T) {
	f := New([]float64{0.5, 0.5})
	f.ProcessSample(1)
	f.Reset()
	if y := f.ProcessSample(0); y != 0 {
		t.Fatalf("after Reset: got %v, want 0", y)
	}
}

func TestDesignBandpass_NormalizedAndSymmetric(t *testing.T) {
	h, err := DesignBandpass(257, 51200, 4000, 8000)
	if err != nil {
		t.Fatalf("DesignBandpass: %v", err)
	}
	if len(h) != 257 {
		t.Fatalf("len: got %d, want 257", len(h))
	}
	if sum := floats.Sum(h); !almostEqual(sum, 1, 1e-6) {
		t.Fatalf("sum: got %.12f, want 1", sum)
	}
	for i := range h {
		j := len(h) - 1 - i
		if !almostEqual(h[i], h[j], 1e-9*math.Max(1, math.Abs(h[i]))) {
			t.Fatalf("h[%d]=%v != h[%d]=%v", i, h[i], j, h[j])
		}
	}
}

func TestDesignBandpass_PassbandAboveStopband(t *testing.T) {
	const fs = 51200.0
	h, err := DesignBandpass(257, fs, 4000, 8000)
	if err != nil {
		t.Fatalf("DesignBandpass: %v", err)
	}
	f := New(h)
	pass := f.MagnitudeDB(6000, fs)
	for _, stop := range []float64{500, 15000, 20000} {
		if got := f.MagnitudeDB(stop, fs); got > pass-30 {
			t.Errorf("stopband %.0f Hz: %.1f dB, passband %.1f dB", stop, got, pass)
		}
	}
}

func TestDesignBandpass_Errors(t *testing.T) {
	tests := []struct {
		name      string
		taps      int
		fs        float64
		low, high float64
		want      error
	}{
		{"even taps", 256, 51200, 4000, 8000, ErrInvalidTaps},
		{"too few taps", 1, 51200, 4000, 8000, ErrInvalidTaps},
		{"inverted band", 257, 51200, 8000, 4000, ErrInvalidBand},
		{"above nyquist", 257, 51200, 4000, 30000, ErrInvalidBand},
		{"negative low", 257, 51200, -1, 8000, ErrInvalidBand},
		{"zero rate", 257, 0, 4000, 8000, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DesignBandpass(tt.taps, tt.fs, tt.low, tt.high)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConvolve_MatchesDirectSum(t *testing.T) {
	signal := []float64{1, -2, 3, 0.5, -1, 4, 2}
	coeffs := []float64{0.2, -0.4, 0.7}

	got := Convolve(signal, coeffs)
	if len(got) != len(signal) {
		t.Fatalf("len: got %d, want %d", len(got), len(signal))
	}
	for n := range signal {
		var want float64
		for k := range coeffs {
			if n-k >= 0 {
				want += coeffs[k] * signal[n-k]
			}
		}
		if !almostEqual(got[n], want, eps) {
			t.Errorf("out[%d]: got %v, want %v", n, got[n], want)
		}
	}
}

func TestConvolveQ15_UnitSumPassesDC(t *testing.T) {
	coeffs := fixed.Quantize([]float64{0.25, 0.5, 0.25})
	in := []fixed.Q15{16384, 16384, 16384, 16384}

	got := ConvolveQ15(in, coeffs)
	want := []fixed.Q15{4096, 12288, 16384, 16384}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("out[%d]: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestConvolveQ15_Saturates(t *testing.T) {
	coeffs := []fixed.Q15{fixed.One, fixed.One}

	hi := ConvolveQ15([]fixed.Q15{fixed.One, fixed.One}, coeffs)
	if hi[1] != fixed.One {
		t.Errorf("positive: got %d, want %d", hi[1], fixed.One)
	}
	lo := ConvolveQ15([]fixed.Q15{fixed.MinusOne, fixed.MinusOne}, coeffs)
	if lo[1] != fixed.MinusOne {
		t.Errorf("negative: got %d, want %d", lo[1], fixed.MinusOne)
	}
}

func TestConvolveQ15_TracksFloat(t *testing.T) {
	h, err := DesignBandpass(31, 51200, 4000, 8000)
	if err != nil {
		t.Fatalf("DesignBandpass: %v", err)
	}
	// Scale into Q15 range; the unit-sum band-pass has taps well above 1.
	scale := 1 / floats.Norm(h, math.Inf(1)) / 2
	floats.Scale(scale, h)

	x := make([]float64, 256)
	for i := range x {
		x[i] = 0.01 * math.Sin(2*math.Pi*6000*float64(i)/51200)
	}

	ref := Convolve(x, h)
	got := fixed.Floats(ConvolveQ15(fixed.Quantize(x), fixed.Quantize(h)))
	for i := range ref {
		if !almostEqual(got[i], ref[i], 2e-3) {
			t.Fatalf("out[%d]: got %v, want %v", i, got[i], ref[i])
		}
	}
}
