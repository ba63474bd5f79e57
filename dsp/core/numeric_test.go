package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
		{name: "q15 headroom", value: -7, min: -1.999, max: 1.999, expected: -1.999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPowerDBConversions(t *testing.T) {
	db := LinearPowerToDB(DBPowerToLinear(6))
	if math.Abs(db-6) > 1e-10 {
		t.Fatalf("LinearPowerToDB(DBPowerToLinear(6)) = %v, want 6", db)
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("LinearPowerToDB(0) should be -Inf")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("LinearPowerToDB(-1) should be NaN")
	}
}

func TestPowerOfTwoHelpers(t *testing.T) {
	tests := []struct {
		n      int
		isPow2 bool
		next   int
		atMost int
	}{
		{n: 0, isPow2: false, next: 1, atMost: 0},
		{n: 1, isPow2: true, next: 1, atMost: 1},
		{n: 3, isPow2: false, next: 4, atMost: 2},
		{n: 1024, isPow2: true, next: 1024, atMost: 1024},
		{n: 204800, isPow2: false, next: 262144, atMost: 131072},
	}

	for _, tt := range tests {
		if got := IsPowerOfTwo(tt.n); got != tt.isPow2 {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", tt.n, got, tt.isPow2)
		}
		if got := NextPowerOfTwo(tt.n); got != tt.next {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.next)
		}
		if got := LargestPowerOfTwoAtMost(tt.n); got != tt.atMost {
			t.Errorf("LargestPowerOfTwoAtMost(%d) = %d, want %d", tt.n, got, tt.atMost)
		}
	}
}

func TestZeroPadKeepsPowerOfTwoInput(t *testing.T) {
	in := []float64{1, 2, 3, 4}
	out := ZeroPad(in)
	if &out[0] != &in[0] {
		t.Fatal("ZeroPad copied a power-of-two input")
	}
}
