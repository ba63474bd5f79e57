package window

import (
	"errors"
	"math"
	"testing"
)

func TestHannEndpointsAndPeak(t *testing.T) {
	w, err := Hann(9)
	if err != nil {
		t.Fatalf("Hann: %v", err)
	}
	if w[0] != 0 || math.Abs(w[8]) > 1e-15 {
		t.Fatalf("endpoints = %v, %v; want 0", w[0], w[8])
	}
	if math.Abs(w[4]-1) > 1e-15 {
		t.Fatalf("center = %v, want 1", w[4])
	}
	for i := range 4 {
		if math.Abs(w[i]-w[8-i]) > 1e-15 {
			t.Fatalf("asymmetric at %d: %v vs %v", i, w[i], w[8-i])
		}
	}
}

func TestHammingEndpoints(t *testing.T) {
	w, err := Hamming(257)
	if err != nil {
		t.Fatalf("Hamming: %v", err)
	}
	if math.Abs(w[0]-0.08) > 1e-12 || math.Abs(w[256]-0.08) > 1e-12 {
		t.Fatalf("endpoints = %v, %v; want 0.08", w[0], w[256])
	}
	if math.Abs(w[128]-1) > 1e-12 {
		t.Fatalf("center = %v, want 1", w[128])
	}
}

func TestGenerateEdgeCases(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 1 {
		t.Fatalf("Generate(1) = %v, want [1]", w)
	}
	if _, err := Hann(-1); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Hann(-1) error = %v, want ErrInvalidSize", err)
	}
	if w := Generate(Type(99), 4); w != nil {
		t.Fatalf("unknown type returned %v", w)
	}
}

func TestApply(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1}
	Apply(TypeHann, buf)
	want := Generate(TypeHann, 5)
	for i := range buf {
		if math.Abs(buf[i]-want[i]) > 1e-15 {
			t.Fatalf("index %d: got %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestApplyCoefficients(t *testing.T) {
	out, err := ApplyCoefficients([]float64{2, 4}, []float64{0.5, 0.25})
	if err != nil {
		t.Fatalf("ApplyCoefficients: %v", err)
	}
	if out[0] != 1 || out[1] != 1 {
		t.Fatalf("out = %v, want [1 1]", out)
	}
	if _, err := ApplyCoefficients([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatched) {
		t.Fatalf("error = %v, want ErrLengthMismatched", err)
	}
}

func TestEnergyAndENBW(t *testing.T) {
	w := Generate(TypeHann, 4096)
	// Σ hann² ≈ 3/8·L for long windows.
	if e := Energy(w); math.Abs(e/4096-0.375) > 1e-3 {
		t.Fatalf("Energy/L = %v, want ~0.375", e/4096)
	}

	enbw, err := EquivalentNoiseBandwidth(w)
	if err != nil {
		t.Fatalf("ENBW: %v", err)
	}
	if math.Abs(enbw-1.5) > 1e-2 {
		t.Fatalf("ENBW = %v, want ~1.5", enbw)
	}

	if _, err := EquivalentNoiseBandwidth(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("error = %v, want ErrEmpty", err)
	}
	if _, err := EquivalentNoiseBandwidth([]float64{1, -1}); !errors.Is(err, ErrZeroGain) {
		t.Fatalf("error = %v, want ErrZeroGain", err)
	}
}
