package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	dspfft "github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/rotorfd/dsp/fixed"
	"github.com/cwbudde/rotorfd/dsp/numeric"
)

func randomComplex(seed int64, n int) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 8, 64, 1024, 4096} {
		x := randomComplex(int64(n), n)
		buf := append([]complex128(nil), x...)

		Transform(numeric.Float64, buf, Forward)
		Transform(numeric.Float64, buf, Inverse)

		for i := range x {
			scale := math.Max(1, cmplx.Abs(x[i]))
			if cmplx.Abs(buf[i]-x[i])/scale > 1e-9 {
				t.Fatalf("n=%d index %d: got %v, want %v", n, i, buf[i], x[i])
			}
		}
	}
}

func TestForwardMatchesReference(t *testing.T) {
	for _, n := range []int{4, 32, 512} {
		x := randomComplex(7, n)
		want := dspfft.FFT(x)

		got := append([]complex128(nil), x...)
		Transform(numeric.Float64, got, Forward)

		for k := range want {
			if cmplx.Abs(got[k]-want[k]) > 1e-9*float64(n) {
				t.Fatalf("n=%d bin %d: got %v, want %v", n, k, got[k], want[k])
			}
		}
	}
}

func TestForwardSineBin(t *testing.T) {
	const n = 256
	buf := make([]complex128, n)
	for i := range buf {
		buf[i] = complex(math.Cos(2*math.Pi*16*float64(i)/n), 0)
	}
	Transform(numeric.Float64, buf, Forward)

	for k, v := range buf {
		want := 0.0
		if k == 16 || k == n-16 {
			want = n / 2
		}
		if math.Abs(cmplx.Abs(v)-want) > 1e-9 {
			t.Fatalf("bin %d: |X| = %v, want %v", k, cmplx.Abs(v), want)
		}
	}
}

func TestTransformPanicsOnNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for length 12")
		}
	}()
	Transform(numeric.Float64, make([]complex128, 12), Forward)
}

func TestQ15ImpulseIsFlatAndScaled(t *testing.T) {
	const n = 8
	buf := make([]fixed.Complex, n)
	buf[0] = fixed.Complex{Re: 8192}

	Transform(numeric.Q15, buf, Forward)
	for k, z := range buf {
		if z.Re != 1024 || z.Im != 0 {
			t.Fatalf("bin %d = %+v, want {1024 0}", k, z)
		}
	}
}

func TestQ15RoundTripScalesByN(t *testing.T) {
	const n = 16
	x := make([]float64, n)
	for i := range x {
		x[i] = 0.5 * math.Sin(2*math.Pi*float64(i)/n)
	}
	buf := make([]fixed.Complex, n)
	for i, v := range x {
		buf[i] = fixed.Complex{Re: fixed.FromFloat(v)}
	}

	Transform(numeric.Q15, buf, Forward)
	Transform(numeric.Q15, buf, Inverse)

	for i, v := range x {
		want := v / n
		if math.Abs(buf[i].Re.Float()-want) > 4.0/32768 {
			t.Fatalf("index %d: got %v, want ~%v", i, buf[i].Re.Float(), want)
		}
	}
}

func TestQ15ForwardTracksFloat(t *testing.T) {
	const n = 64
	fbuf := make([]complex128, n)
	qbuf := make([]fixed.Complex, n)
	for i := range fbuf {
		v := 0.8 * math.Cos(2*math.Pi*5*float64(i)/n)
		fbuf[i] = complex(v, 0)
		qbuf[i] = fixed.Complex{Re: fixed.FromFloat(v)}
	}

	Transform(numeric.Float64, fbuf, Forward)
	Transform(numeric.Q15, qbuf, Forward)

	for k := range fbuf {
		want := fbuf[k] / n
		got := qbuf[k].Complex128()
		if cmplx.Abs(got-want) > 8.0/32768 {
			t.Fatalf("bin %d: q15 %v, float/N %v", k, got, want)
		}
	}
}

func TestPlannedMatchesRadix2(t *testing.T) {
	p := NewPlanned()
	for _, n := range []int{16, 1024} {
		x := randomComplex(3, n)
		a := append([]complex128(nil), x...)
		b := append([]complex128(nil), x...)

		Radix2{}.Forward(a)
		p.Forward(b)
		for k := range a {
			if cmplx.Abs(a[k]-b[k]) > 1e-9*float64(n) {
				t.Fatalf("n=%d forward bin %d: radix2 %v, planned %v", n, k, a[k], b[k])
			}
		}

		p.Inverse(b)
		for i := range x {
			if cmplx.Abs(b[i]-x[i]) > 1e-9 {
				t.Fatalf("n=%d inverse index %d: got %v, want %v", n, i, b[i], x[i])
			}
		}
	}
}

func TestNewTransformer(t *testing.T) {
	if _, err := NewTransformer(""); err != nil {
		t.Fatalf("default backend: %v", err)
	}
	if tr, err := NewTransformer(BackendPlanned); err != nil {
		t.Fatalf("planned backend: %v", err)
	} else if _, ok := tr.(*Planned); !ok {
		t.Fatalf("planned backend returned %T", tr)
	}
	if _, err := NewTransformer("fftw"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func BenchmarkTransform(b *testing.B) {
	buf := randomComplex(1, 65536)
	for b.Loop() {
		Transform(numeric.Float64, buf, Forward)
	}
}
