package fixed

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestCMulMatchesFloat(t *testing.T) {
	a := ComplexFromFloat(0.5, -0.25)
	b := ComplexFromFloat(0.3, 0.6)

	got := CMul(a, b).Complex128()
	want := a.Complex128() * b.Complex128()
	if cmplx.Abs(got-want) > 2.0/32768 {
		t.Fatalf("CMul = %v, want %v", got, want)
	}
}

func TestCMulSaturatesCrossTerms(t *testing.T) {
	a := Complex{Re: MinusOne, Im: MinusOne}
	b := Complex{Re: MinusOne, Im: One}

	got := CMul(a, b)
	// re = 1 + 0.99997 saturates, im = -0.99997 + 1 is tiny.
	if got.Re != One {
		t.Fatalf("re = %d, want %d", got.Re, One)
	}
	if got.Im != 1 {
		t.Fatalf("im = %d, want 1", got.Im)
	}
}

func TestAbsApprox(t *testing.T) {
	tests := []struct {
		z    Complex
		want Q15
	}{
		{z: Complex{Re: 1000, Im: 0}, want: 1000},
		{z: Complex{Re: -1000, Im: 400}, want: 1200},
		{z: Complex{Re: 300, Im: -800}, want: 950},
		{z: Complex{Re: MinusOne, Im: MinusOne}, want: One},
	}

	for _, tt := range tests {
		if got := AbsApprox(tt.z); got != tt.want {
			t.Errorf("AbsApprox(%v) = %d, want %d", tt.z, got, tt.want)
		}
	}
}

func TestAbsApproxBoundsExactMagnitude(t *testing.T) {
	for deg := 0; deg < 360; deg += 7 {
		phi := float64(deg) * math.Pi / 180
		z := ComplexFromFloat(0.5*math.Cos(phi), 0.5*math.Sin(phi))
		exact := cmplx.Abs(z.Complex128())
		approx := AbsApprox(z).Float()
		if approx < exact-2.0/32768 || approx > 1.12*exact+2.0/32768 {
			t.Fatalf("deg %d: approx %v outside [%v, %v]", deg, approx, exact, 1.12*exact)
		}
	}
}
